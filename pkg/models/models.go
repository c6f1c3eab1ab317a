package models

import "github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"

// Sort criteria accepted by the browse endpoint
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortName     = "name"
	SortCategory = "category"
)

// BrowseOptions controls skill offer selection, ordering and pagination.
// SearchTerm takes precedence over Category; with neither set, every
// available offer is considered.
type BrowseOptions struct {
	SearchTerm string `form:"search" json:"search_term"`
	Category   string `form:"category" json:"category"`
	SortBy     string `form:"sort_by" json:"sort_by"`
	Limit      int    `form:"limit" json:"limit"`
	Offset     int    `form:"offset" json:"offset"`
}

// BrowseResult is one page of skill offers plus pagination facts
type BrowseResult struct {
	Offers  []database.SkillOffer `json:"offers"`
	Total   int                   `json:"total"`
	HasMore bool                  `json:"has_more"`
}

// CategoryCount pairs a category label with how many offers carry it
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// SkillStatistics is the aggregate view over all available offers. An offer
// listing N categories contributes to N counts.
type SkillStatistics struct {
	TotalOffers   int                   `json:"total_offers"`
	TopCategories []CategoryCount       `json:"top_categories"`
	RecentOffers  []database.SkillOffer `json:"recent_offers"`
}

// PublishOfferInput is the payload for publishing a skill offer
type PublishOfferInput struct {
	SkillName   string   `json:"skill_name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// ScheduleSessionInput is the payload for scheduling a help session
type ScheduleSessionInput struct {
	VolunteerID      string `json:"volunteer_id"`
	RecipientID      string `json:"recipient_id"`
	SkillOfferID     string `json:"skill_offer_id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ScheduledDate    string `json:"scheduled_date"` // YYYY-MM-DD
	StartTime        string `json:"start_time"`     // HH:MM
	EndTime          string `json:"end_time"`       // HH:MM
	EstimatedMinutes int    `json:"estimated_minutes"`
	LocationType     string `json:"location_type"`
	LocationDetails  string `json:"location_details"`
	Notes            string `json:"notes"`
}

// RescheduleInput replaces a session's date/time and records why
type RescheduleInput struct {
	ScheduledDate string `json:"scheduled_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Reason        string `json:"reason"`
}
