// Command demo walks the full time-bank flow against a local database:
// publish skill offers, browse them, then take a help session from
// scheduling through confirmation, a reschedule, completion feedback and
// a gratitude message.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/internal/store"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/browse"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/display"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/sessions"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()

	maya := seedMember(db, "maya", "Maya")
	jun := seedMember(db, "jun", "Jun")

	offers := store.NewSkillStore(db)
	seedOffer(offers, db, maya.ID, "Bicycle repair", "Flats, brakes, full tune-ups", []string{"repair", "transport"})
	seedOffer(offers, db, maya.ID, "Sourdough baking", "Starter care and first loaves", []string{"food"})
	seedOffer(offers, db, jun.ID, "Garden planning", "Companion planting for small plots", []string{"garden", "food"})

	skills := browse.NewService(offers)

	result, err := skills.Browse(models.BrowseOptions{SortBy: models.SortName})
	if err != nil {
		log.Fatalf("browse failed: %v", err)
	}
	fmt.Println(display.SkillList(result))

	stats, err := skills.Statistics()
	if err != nil {
		log.Fatalf("statistics failed: %v", err)
	}
	fmt.Println(display.Statistics(stats))

	// The help session lifecycle, end to end
	svc := sessions.NewService(store.NewSessionStore(db))

	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	session, err := svc.Schedule(models.ScheduleSessionInput{
		VolunteerID:      maya.ID,
		RecipientID:      jun.ID,
		Title:            "Fix Jun's commuter bike",
		Description:      "Rear brake drags, needs adjustment",
		ScheduledDate:    nextWeek,
		StartTime:        "10:00",
		EndTime:          "11:00",
		EstimatedMinutes: 60,
		LocationType:     "in_person",
		LocationDetails:  "Community workshop",
	})
	if err != nil {
		log.Fatalf("schedule failed: %v", err)
	}
	fmt.Println(display.Session(session))

	if _, err := svc.Confirm(session.ID, maya.ID); err != nil {
		log.Fatalf("volunteer confirm failed: %v", err)
	}
	session, err = svc.Confirm(session.ID, jun.ID)
	if err != nil {
		log.Fatalf("recipient confirm failed: %v", err)
	}
	fmt.Println(display.Session(session))

	// Something came up; move it a day and explain why
	dayAfter := time.Now().AddDate(0, 0, 8).Format("2006-01-02")
	session, err = svc.Reschedule(session.ID, jun.ID, models.RescheduleInput{
		ScheduledDate: dayAfter,
		StartTime:     "14:00",
		EndTime:       "15:00",
		Reason:        "Jun has a childcare shift that morning",
	})
	if err != nil {
		log.Fatalf("reschedule failed: %v", err)
	}
	fmt.Println(display.Session(session))

	if _, err := svc.Confirm(session.ID, maya.ID); err != nil {
		log.Fatalf("volunteer re-confirm failed: %v", err)
	}
	if _, err := svc.Confirm(session.ID, jun.ID); err != nil {
		log.Fatalf("recipient re-confirm failed: %v", err)
	}

	upcoming, err := svc.Upcoming(jun.ID)
	if err != nil {
		log.Fatalf("upcoming failed: %v", err)
	}
	fmt.Println(display.UpcomingSessions(upcoming))

	if _, err := svc.Complete(session.ID, maya.ID, "Brake cable was frayed, replaced it"); err != nil {
		log.Fatalf("volunteer feedback failed: %v", err)
	}
	if _, err := svc.Complete(session.ID, jun.ID, "Bike rides like new, learned to adjust brakes myself"); err != nil {
		log.Fatalf("recipient feedback failed: %v", err)
	}

	session, err = svc.ExpressGratitude(session.ID, jun.ID, "Thank you Maya! Next sourdough loaf is yours.")
	if err != nil {
		log.Fatalf("gratitude failed: %v", err)
	}
	fmt.Println(display.Session(session))
}

func seedMember(db *gorm.DB, username, displayName string) *database.Member {
	var member database.Member
	if err := db.Where("username = ?", username).First(&member).Error; err == nil {
		return &member
	}

	member = database.Member{
		ID:           uuid.New().String(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: "demo-only",
	}
	if err := db.Create(&member).Error; err != nil {
		log.Fatalf("could not seed member %s: %v", username, err)
	}
	return &member
}

func seedOffer(offers *store.SkillStore, db *gorm.DB, memberID, name, description string, categories []string) {
	var count int64
	db.Model(&database.SkillOffer{}).
		Where("member_id = ? AND skill_name = ?", memberID, name).
		Count(&count)
	if count > 0 {
		return
	}

	offer := database.SkillOffer{
		ID:          uuid.New().String(),
		MemberID:    memberID,
		SkillName:   name,
		Description: description,
		Categories:  categories,
		Available:   true,
		CreatedAt:   time.Now(),
	}
	if err := offers.CreateOffer(&offer); err != nil {
		log.Fatalf("could not seed offer %s: %v", name, err)
	}
}
