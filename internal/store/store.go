// Package store provides the GORM-backed skill-offer and help-session
// stores. Services receive them as injected interfaces and never touch
// the database directly.
package store

import (
	"errors"
	"strings"

	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/sessions"
	"gorm.io/gorm"
)

// SkillStore reads and writes skill offers. Satisfies browse.SkillSource.
type SkillStore struct {
	DB *gorm.DB
}

// NewSkillStore wraps a database handle
func NewSkillStore(db *gorm.DB) *SkillStore {
	return &SkillStore{DB: db}
}

// AvailableSkills returns every offer currently marked available
func (s *SkillStore) AvailableSkills() ([]database.SkillOffer, error) {
	var offers []database.SkillOffer
	if err := s.DB.Where("available = ?", true).Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// SkillsByCategory returns available offers carrying the exact category
// label. Categories are stored as a serialized list, so matching happens
// here rather than in SQL.
func (s *SkillStore) SkillsByCategory(category string) ([]database.SkillOffer, error) {
	offers, err := s.AvailableSkills()
	if err != nil {
		return nil, err
	}
	matched := make([]database.SkillOffer, 0, len(offers))
	for _, offer := range offers {
		for _, cat := range offer.Categories {
			if cat == category {
				matched = append(matched, offer)
				break
			}
		}
	}
	return matched, nil
}

// SearchSkills returns available offers whose name or description
// contains the term, case-insensitively
func (s *SkillStore) SearchSkills(term string) ([]database.SkillOffer, error) {
	offers, err := s.AvailableSkills()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(term)
	matched := make([]database.SkillOffer, 0, len(offers))
	for _, offer := range offers {
		if strings.Contains(strings.ToLower(offer.SkillName), needle) ||
			strings.Contains(strings.ToLower(offer.Description), needle) {
			matched = append(matched, offer)
		}
	}
	return matched, nil
}

// AllCategories returns every category label in use, in first-seen order
func (s *SkillStore) AllCategories() ([]string, error) {
	offers, err := s.AvailableSkills()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, offer := range offers {
		for _, cat := range offer.Categories {
			if !seen[cat] {
				seen[cat] = true
				categories = append(categories, cat)
			}
		}
	}
	return categories, nil
}

// CreateOffer persists a new skill offer
func (s *SkillStore) CreateOffer(offer *database.SkillOffer) error {
	return s.DB.Create(offer).Error
}

// SessionStore reads and writes help sessions. Satisfies sessions.Store.
type SessionStore struct {
	DB *gorm.DB
}

// NewSessionStore wraps a database handle
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{DB: db}
}

// Create persists a new help session
func (s *SessionStore) Create(session *database.HelpSession) error {
	return s.DB.Create(session).Error
}

// Get fetches a session by id
func (s *SessionStore) Get(id string) (*database.HelpSession, error) {
	var session database.HelpSession
	if err := s.DB.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sessions.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Save writes back a mutated session
func (s *SessionStore) Save(session *database.HelpSession) error {
	return s.DB.Save(session).Error
}

// UpcomingFor returns the member's not-yet-completed sessions on or after
// the given date, soonest first
func (s *SessionStore) UpcomingFor(memberID string, from string) ([]database.HelpSession, error) {
	var list []database.HelpSession
	err := s.DB.
		Where("(volunteer_id = ? OR recipient_id = ?) AND scheduled_date >= ? AND status <> ?",
			memberID, memberID, from, database.StatusCompleted).
		Order("scheduled_date asc, start_time asc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
