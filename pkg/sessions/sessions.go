package sessions

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
)

var (
	ErrNotFound       = errors.New("help session not found")
	ErrNotParticipant = errors.New("member is not part of this session")
	ErrNotCompleted   = errors.New("session has not been completed yet")
	ErrAlreadyDone    = errors.New("a completed session cannot be rescheduled")
	ErrAlreadyThanked = errors.New("gratitude was already expressed for this session")
	ErrMissingParty   = errors.New("volunteer and recipient are required")
	ErrSameParty      = errors.New("volunteer and recipient must be different members")
	ErrMissingTitle   = errors.New("a session title is required")
	ErrBadDate        = errors.New("scheduled date must be YYYY-MM-DD")
	ErrBadTimeRange   = errors.New("start and end times must be HH:MM with start before end")
)

// Store is the session store the lifecycle service drives. Referential
// integrity (that the parties exist) is the store owner's concern.
type Store interface {
	Create(session *database.HelpSession) error
	Get(id string) (*database.HelpSession, error)
	Save(session *database.HelpSession) error
	UpcomingFor(memberID string, from string) ([]database.HelpSession, error)
}

// Service walks help sessions through their lifecycle:
// schedule -> confirm (each party) -> optional reschedule ->
// complete (feedback from each party) -> gratitude.
type Service struct {
	Store Store
}

// NewService creates a session service backed by the given store
func NewService(store Store) *Service {
	return &Service{Store: store}
}

// Validate checks a schedule request without persisting anything
func Validate(in models.ScheduleSessionInput) error {
	if in.VolunteerID == "" || in.RecipientID == "" {
		return ErrMissingParty
	}
	if in.VolunteerID == in.RecipientID {
		return ErrSameParty
	}
	if in.Title == "" {
		return ErrMissingTitle
	}
	if err := validateDate(in.ScheduledDate); err != nil {
		return err
	}
	return validateTimeRange(in.StartTime, in.EndTime)
}

// Schedule validates the input and creates a new session in the
// scheduled state
func (s *Service) Schedule(in models.ScheduleSessionInput) (*database.HelpSession, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	session := &database.HelpSession{
		ID:               uuid.New().String(),
		VolunteerID:      in.VolunteerID,
		RecipientID:      in.RecipientID,
		SkillOfferID:     in.SkillOfferID,
		Title:            in.Title,
		Description:      in.Description,
		ScheduledDate:    in.ScheduledDate,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		EstimatedMinutes: in.EstimatedMinutes,
		LocationType:     in.LocationType,
		LocationDetails:  in.LocationDetails,
		Notes:            in.Notes,
		Status:           database.StatusScheduled,
	}

	if err := s.Store.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm records one party's confirmation. Once both parties have
// confirmed, the session moves to the confirmed state.
func (s *Service) Confirm(id, memberID string) (*database.HelpSession, error) {
	session, err := s.participant(id, memberID)
	if err != nil {
		return nil, err
	}

	if memberID == session.VolunteerID {
		session.VolunteerConfirmed = true
	} else {
		session.RecipientConfirmed = true
	}
	if session.VolunteerConfirmed && session.RecipientConfirmed && session.Status == database.StatusScheduled {
		session.Status = database.StatusConfirmed
	}

	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Reschedule replaces the session's date/time and records the reason.
// The session id is preserved. Both confirmations are cleared since the
// new time needs re-agreement.
func (s *Service) Reschedule(id, memberID string, in models.RescheduleInput) (*database.HelpSession, error) {
	session, err := s.participant(id, memberID)
	if err != nil {
		return nil, err
	}
	if session.Status == database.StatusCompleted {
		return nil, ErrAlreadyDone
	}
	if err := validateDate(in.ScheduledDate); err != nil {
		return nil, err
	}
	if err := validateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	session.ScheduledDate = in.ScheduledDate
	session.StartTime = in.StartTime
	session.EndTime = in.EndTime
	session.RescheduleReason = in.Reason
	session.VolunteerConfirmed = false
	session.RecipientConfirmed = false
	if session.Status == database.StatusConfirmed {
		session.Status = database.StatusScheduled
	}

	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Complete records one party's free-text feedback. Each party submits
// independently; the first submission marks the session completed.
func (s *Service) Complete(id, memberID, feedback string) (*database.HelpSession, error) {
	session, err := s.participant(id, memberID)
	if err != nil {
		return nil, err
	}

	if memberID == session.VolunteerID {
		session.VolunteerFeedback = feedback
	} else {
		session.RecipientFeedback = feedback
	}
	session.Status = database.StatusCompleted

	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ExpressGratitude lets either party acknowledge a completed session,
// once. Gratitude stands in for ratings or payment.
func (s *Service) ExpressGratitude(id, memberID, message string) (*database.HelpSession, error) {
	session, err := s.participant(id, memberID)
	if err != nil {
		return nil, err
	}
	if session.Status != database.StatusCompleted {
		return nil, ErrNotCompleted
	}
	if session.GratitudeExpressed {
		return nil, ErrAlreadyThanked
	}

	session.GratitudeExpressed = true
	session.GratitudeMessage = message

	if err := s.Store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Upcoming lists the member's not-yet-completed sessions from today on
func (s *Service) Upcoming(memberID string) ([]database.HelpSession, error) {
	today := time.Now().Format("2006-01-02")
	return s.Store.UpcomingFor(memberID, today)
}

func (s *Service) participant(id, memberID string) (*database.HelpSession, error) {
	session, err := s.Store.Get(id)
	if err != nil {
		return nil, err
	}
	if memberID != session.VolunteerID && memberID != session.RecipientID {
		return nil, ErrNotParticipant
	}
	return session, nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrBadDate
	}
	return nil
}

func validateTimeRange(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	st, err := time.Parse("15:04", start)
	if err != nil {
		return ErrBadTimeRange
	}
	en, err := time.Parse("15:04", end)
	if err != nil {
		return ErrBadTimeRange
	}
	if !st.Before(en) {
		return ErrBadTimeRange
	}
	return nil
}
