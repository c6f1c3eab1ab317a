package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Member represents the members table
type Member struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SkillOffer represents the skill_offers table. A member's declared
// willingness to share a skill, gift-economy style.
type SkillOffer struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	MemberID    string    `gorm:"index;not null" json:"member_id"`
	SkillName   string    `gorm:"not null" json:"skill_name"`
	Description string    `json:"description"`
	Categories  []string  `gorm:"serializer:json" json:"categories"`
	Available   bool      `gorm:"default:true" json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session status values
const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// HelpSession represents the help_sessions table: a scheduled meeting
// between a volunteer and a recipient, optionally tied to a skill offer.
type HelpSession struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	VolunteerID        string    `gorm:"index;not null" json:"volunteer_id"`
	RecipientID        string    `gorm:"index;not null" json:"recipient_id"`
	SkillOfferID       string    `gorm:"index" json:"skill_offer_id,omitempty"`
	Title              string    `gorm:"not null" json:"title"`
	Description        string    `json:"description"`
	ScheduledDate      string    `gorm:"index;not null" json:"scheduled_date"` // YYYY-MM-DD
	StartTime          string    `json:"start_time"`                           // HH:MM
	EndTime            string    `json:"end_time"`                             // HH:MM
	EstimatedMinutes   int       `json:"estimated_minutes"`
	LocationType       string    `json:"location_type"` // e.g. in_person, virtual
	LocationDetails    string    `json:"location_details"`
	Notes              string    `json:"notes"`
	Status             string    `gorm:"default:scheduled" json:"status"`
	VolunteerConfirmed bool      `json:"volunteer_confirmed"`
	RecipientConfirmed bool      `json:"recipient_confirmed"`
	RescheduleReason   string    `json:"reschedule_reason,omitempty"`
	VolunteerFeedback  string    `json:"volunteer_feedback,omitempty"`
	RecipientFeedback  string    `json:"recipient_feedback,omitempty"`
	GratitudeExpressed bool      `json:"gratitude_expressed"`
	GratitudeMessage   string    `json:"gratitude_message,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "timebank.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto Migration
	db.AutoMigrate(&Member{}, &SkillOffer{}, &HelpSession{})

	return db
}
