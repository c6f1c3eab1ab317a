package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/sessions"
)

// ValidateSession checks a schedule request without creating anything
func (h *Handler) ValidateSession(c *gin.Context) {
	var input models.ScheduleSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := sessions.Validate(input); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"volunteer_id": input.VolunteerID,
			"recipient_id": input.RecipientID,
			"date":         input.ScheduledDate,
		},
	})
}
