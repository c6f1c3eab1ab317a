// Package display renders skill offers, statistics and help sessions as
// multi-line text blocks for console output.
package display

import (
	"fmt"
	"strings"

	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
)

// SkillList renders one page of skill offers
func SkillList(result *models.BrowseResult) string {
	if result.Total == 0 {
		return "No skills have been offered yet. Be the first to share one!\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== Skill Offers (%d of %d) ===\n", len(result.Offers), result.Total)
	for i, offer := range result.Offers {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, offer.SkillName)
		if len(offer.Categories) > 0 {
			fmt.Fprintf(&b, "   Categories: %s\n", strings.Join(offer.Categories, ", "))
		}
		if offer.Description != "" {
			fmt.Fprintf(&b, "   %s\n", offer.Description)
		}
		fmt.Fprintf(&b, "   Offered by %s on %s\n", offer.MemberID, offer.CreatedAt.Format("2006-01-02"))
	}
	if result.HasMore {
		b.WriteString("\n...more offers available\n")
	}
	return b.String()
}

// Categories renders the list of category labels in use
func Categories(categories []string) string {
	if len(categories) == 0 {
		return "No skill categories yet.\n"
	}

	var b strings.Builder
	b.WriteString("=== Skill Categories ===\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, "- %s\n", cat)
	}
	return b.String()
}

// Statistics renders the aggregate skill statistics digest
func Statistics(stats *models.SkillStatistics) string {
	if stats.TotalOffers == 0 {
		return "No skills have been offered yet. Be the first to share one!\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== Community Skill Statistics ===\n")
	fmt.Fprintf(&b, "Total offers: %d\n", stats.TotalOffers)

	if len(stats.TopCategories) > 0 {
		b.WriteString("\nTop categories:\n")
		for _, cc := range stats.TopCategories {
			fmt.Fprintf(&b, "  %-20s %d\n", cc.Category, cc.Count)
		}
	}

	if len(stats.RecentOffers) > 0 {
		b.WriteString("\nRecently offered:\n")
		for _, offer := range stats.RecentOffers {
			fmt.Fprintf(&b, "  %s (%s)\n", offer.SkillName, offer.CreatedAt.Format("2006-01-02"))
		}
	}
	return b.String()
}

// Session renders a single help session card
func Session(s *database.HelpSession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Help Session: %s ===\n", s.Title)
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	fmt.Fprintf(&b, "When: %s %s-%s\n", s.ScheduledDate, s.StartTime, s.EndTime)
	if s.LocationType != "" {
		fmt.Fprintf(&b, "Where: %s (%s)\n", s.LocationDetails, s.LocationType)
	}
	fmt.Fprintf(&b, "Volunteer: %s (confirmed: %v)\n", s.VolunteerID, s.VolunteerConfirmed)
	fmt.Fprintf(&b, "Recipient: %s (confirmed: %v)\n", s.RecipientID, s.RecipientConfirmed)
	if s.RescheduleReason != "" {
		fmt.Fprintf(&b, "Rescheduled: %s\n", s.RescheduleReason)
	}
	if s.VolunteerFeedback != "" {
		fmt.Fprintf(&b, "Volunteer feedback: %s\n", s.VolunteerFeedback)
	}
	if s.RecipientFeedback != "" {
		fmt.Fprintf(&b, "Recipient feedback: %s\n", s.RecipientFeedback)
	}
	if s.GratitudeExpressed {
		fmt.Fprintf(&b, "Gratitude: %s\n", s.GratitudeMessage)
	}
	return b.String()
}

// UpcomingSessions renders a member's upcoming sessions
func UpcomingSessions(list []database.HelpSession) string {
	if len(list) == 0 {
		return "No upcoming help sessions.\n"
	}

	var b strings.Builder
	b.WriteString("=== Upcoming Help Sessions ===\n")
	for _, s := range list {
		fmt.Fprintf(&b, "- %s %s-%s  %s [%s]\n",
			s.ScheduledDate, s.StartTime, s.EndTime, s.Title, s.Status)
	}
	return b.String()
}
