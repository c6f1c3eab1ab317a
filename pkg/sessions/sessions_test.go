package sessions

import (
	"errors"
	"testing"
	"time"

	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
)

type memStore struct {
	byID map[string]database.HelpSession
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[string]database.HelpSession)}
}

func (m *memStore) Create(session *database.HelpSession) error {
	m.byID[session.ID] = *session
	return nil
}

func (m *memStore) Get(id string) (*database.HelpSession, error) {
	session, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (m *memStore) Save(session *database.HelpSession) error {
	m.byID[session.ID] = *session
	return nil
}

func (m *memStore) UpcomingFor(memberID string, from string) ([]database.HelpSession, error) {
	var list []database.HelpSession
	for _, s := range m.byID {
		if (s.VolunteerID == memberID || s.RecipientID == memberID) &&
			s.ScheduledDate >= from && s.Status != database.StatusCompleted {
			list = append(list, s)
		}
	}
	return list, nil
}

func validInput() models.ScheduleSessionInput {
	return models.ScheduleSessionInput{
		VolunteerID:   "maya",
		RecipientID:   "jun",
		Title:         "Fix commuter bike",
		ScheduledDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:     "10:00",
		EndTime:       "11:00",
	}
}

func TestScheduleValidation(t *testing.T) {
	svc := NewService(newMemStore())

	cases := []struct {
		name    string
		mutate  func(*models.ScheduleSessionInput)
		wantErr error
	}{
		{"missing volunteer", func(in *models.ScheduleSessionInput) { in.VolunteerID = "" }, ErrMissingParty},
		{"same party", func(in *models.ScheduleSessionInput) { in.RecipientID = in.VolunteerID }, ErrSameParty},
		{"missing title", func(in *models.ScheduleSessionInput) { in.Title = "" }, ErrMissingTitle},
		{"bad date", func(in *models.ScheduleSessionInput) { in.ScheduledDate = "next tuesday" }, ErrBadDate},
		{"end before start", func(in *models.ScheduleSessionInput) { in.StartTime, in.EndTime = "11:00", "10:00" }, ErrBadTimeRange},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if _, err := svc.Schedule(in); !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}

	if _, err := svc.Schedule(validInput()); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

func TestConfirmBothParties(t *testing.T) {
	svc := NewService(newMemStore())

	session, err := svc.Schedule(validInput())
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if session.Status != database.StatusScheduled {
		t.Fatalf("Expected new session to be scheduled, got %s", session.Status)
	}

	if _, err := svc.Confirm(session.ID, "stranger"); !errors.Is(err, ErrNotParticipant) {
		t.Errorf("Expected ErrNotParticipant for stranger, got %v", err)
	}

	session, err = svc.Confirm(session.ID, "maya")
	if err != nil {
		t.Fatalf("volunteer confirm failed: %v", err)
	}
	if !session.VolunteerConfirmed || session.Status != database.StatusScheduled {
		t.Errorf("Expected volunteer confirmed but still scheduled, got %+v", session)
	}

	session, err = svc.Confirm(session.ID, "jun")
	if err != nil {
		t.Fatalf("recipient confirm failed: %v", err)
	}
	if !session.RecipientConfirmed || session.Status != database.StatusConfirmed {
		t.Errorf("Expected both confirmed => confirmed status, got %+v", session)
	}
}

func TestReschedulePreservesID(t *testing.T) {
	svc := NewService(newMemStore())

	session, err := svc.Schedule(validInput())
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	originalID := session.ID

	if _, err := svc.Confirm(session.ID, "maya"); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := svc.Confirm(session.ID, "jun"); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	newDate := time.Now().AddDate(0, 0, 8).Format("2006-01-02")
	session, err = svc.Reschedule(session.ID, "jun", models.RescheduleInput{
		ScheduledDate: newDate,
		StartTime:     "14:00",
		EndTime:       "15:00",
		Reason:        "childcare shift",
	})
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}

	if session.ID != originalID {
		t.Errorf("Reschedule changed the session id: %s -> %s", originalID, session.ID)
	}
	if session.ScheduledDate != newDate || session.StartTime != "14:00" || session.EndTime != "15:00" {
		t.Errorf("Date/time not replaced: %+v", session)
	}
	if session.RescheduleReason != "childcare shift" {
		t.Errorf("Expected reason recorded, got %q", session.RescheduleReason)
	}
	if session.VolunteerConfirmed || session.RecipientConfirmed || session.Status != database.StatusScheduled {
		t.Errorf("Expected confirmations cleared after reschedule, got %+v", session)
	}
}

func TestRescheduleCompletedRejected(t *testing.T) {
	svc := NewService(newMemStore())

	session, err := svc.Schedule(validInput())
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if _, err := svc.Complete(session.ID, "maya", "all done"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	_, err = svc.Reschedule(session.ID, "jun", models.RescheduleInput{
		ScheduledDate: time.Now().AddDate(0, 0, 9).Format("2006-01-02"),
		StartTime:     "09:00",
		EndTime:       "10:00",
		Reason:        "trying to move it anyway",
	})
	if !errors.Is(err, ErrAlreadyDone) {
		t.Errorf("Expected ErrAlreadyDone for completed session, got %v", err)
	}
}

func TestCompleteAndGratitude(t *testing.T) {
	svc := NewService(newMemStore())

	session, err := svc.Schedule(validInput())
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	// Gratitude requires a completed session
	if _, err := svc.ExpressGratitude(session.ID, "jun", "thanks!"); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("Expected ErrNotCompleted before completion, got %v", err)
	}

	session, err = svc.Complete(session.ID, "maya", "replaced the brake cable")
	if err != nil {
		t.Fatalf("volunteer feedback failed: %v", err)
	}
	if session.Status != database.StatusCompleted || session.VolunteerFeedback == "" {
		t.Errorf("Expected completed with volunteer feedback, got %+v", session)
	}

	session, err = svc.Complete(session.ID, "jun", "rides like new")
	if err != nil {
		t.Fatalf("recipient feedback failed: %v", err)
	}
	if session.VolunteerFeedback != "replaced the brake cable" || session.RecipientFeedback != "rides like new" {
		t.Errorf("Feedback not kept per party: %+v", session)
	}

	session, err = svc.ExpressGratitude(session.ID, "jun", "thank you Maya!")
	if err != nil {
		t.Fatalf("gratitude failed: %v", err)
	}
	if !session.GratitudeExpressed || session.GratitudeMessage != "thank you Maya!" {
		t.Errorf("Gratitude not recorded: %+v", session)
	}

	if _, err := svc.ExpressGratitude(session.ID, "maya", "again"); !errors.Is(err, ErrAlreadyThanked) {
		t.Errorf("Expected ErrAlreadyThanked on second gratitude, got %v", err)
	}
}

func TestUpcoming(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	session, err := svc.Schedule(validInput())
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	list, err := svc.Upcoming("jun")
	if err != nil {
		t.Fatalf("upcoming failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != session.ID {
		t.Errorf("Expected the scheduled session upcoming for jun, got %+v", list)
	}

	list, err = svc.Upcoming("stranger")
	if err != nil {
		t.Fatalf("upcoming failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected no upcoming sessions for stranger, got %d", len(list))
	}

	if _, err := svc.Complete(session.ID, "maya", "done"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	list, _ = svc.Upcoming("jun")
	if len(list) != 0 {
		t.Errorf("Completed session should not be upcoming, got %d", len(list))
	}
}
