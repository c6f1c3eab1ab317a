package display

import (
	"strings"
	"testing"
	"time"

	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
)

func TestSkillListEmpty(t *testing.T) {
	out := SkillList(&models.BrowseResult{})
	if !strings.Contains(out, "No skills have been offered yet") {
		t.Errorf("Expected friendly empty message, got %q", out)
	}
}

func TestSkillListRendersOffers(t *testing.T) {
	result := &models.BrowseResult{
		Offers: []database.SkillOffer{{
			ID:         "o1",
			MemberID:   "maya",
			SkillName:  "Bicycle repair",
			Categories: []string{"repair", "transport"},
			CreatedAt:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}},
		Total:   3,
		HasMore: true,
	}

	out := SkillList(result)
	for _, want := range []string{"Bicycle repair", "repair, transport", "2026-03-01", "more offers available"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestSessionCard(t *testing.T) {
	s := &database.HelpSession{
		Title:              "Fix commuter bike",
		Status:             database.StatusCompleted,
		ScheduledDate:      "2026-03-08",
		StartTime:          "14:00",
		EndTime:            "15:00",
		VolunteerID:        "maya",
		RecipientID:        "jun",
		GratitudeExpressed: true,
		GratitudeMessage:   "thank you!",
	}

	out := Session(s)
	for _, want := range []string{"Fix commuter bike", "completed", "2026-03-08 14:00-15:00", "thank you!"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected session card to contain %q, got:\n%s", want, out)
		}
	}
}
