package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/display"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/sessions"
)

// ScheduleSession creates a help session. The authenticated member must
// be one of the two parties.
func (h *Handler) ScheduleSession(c *gin.Context) {
	var input models.ScheduleSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	memberID := c.GetString("memberID")
	if input.VolunteerID != memberID && input.RecipientID != memberID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You must be a party to the session"})
		return
	}

	session, err := h.Sessions.Schedule(input)
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// ConfirmSession records the authenticated member's confirmation
func (h *Handler) ConfirmSession(c *gin.Context) {
	session, err := h.Sessions.Confirm(c.Param("id"), c.GetString("memberID"))
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// RescheduleSession replaces the session's date/time and records a reason
func (h *Handler) RescheduleSession(c *gin.Context) {
	var input models.RescheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.Reschedule(c.Param("id"), c.GetString("memberID"), input)
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CompleteSession records the authenticated member's feedback and marks
// the session completed
func (h *Handler) CompleteSession(c *gin.Context) {
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.Complete(c.Param("id"), c.GetString("memberID"), req.Feedback)
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ExpressGratitude acknowledges a completed session
func (h *Handler) ExpressGratitude(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.Sessions.ExpressGratitude(c.Param("id"), c.GetString("memberID"), req.Message)
	if err != nil {
		c.JSON(sessionStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetUpcoming lists the authenticated member's upcoming sessions.
// `?format=text` renders them as a console-style block instead of JSON.
func (h *Handler) GetUpcoming(c *gin.Context) {
	list, err := h.Sessions.Upcoming(c.GetString("memberID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch upcoming sessions"})
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, display.UpcomingSessions(list))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": list})
}

// sessionStatus maps lifecycle errors onto HTTP status codes
func sessionStatus(err error) int {
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, sessions.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, sessions.ErrNotCompleted), errors.Is(err, sessions.ErrAlreadyThanked),
		errors.Is(err, sessions.ErrAlreadyDone):
		return http.StatusConflict
	case errors.Is(err, sessions.ErrMissingParty), errors.Is(err, sessions.ErrSameParty),
		errors.Is(err, sessions.ErrMissingTitle), errors.Is(err, sessions.ErrBadDate),
		errors.Is(err, sessions.ErrBadTimeRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
