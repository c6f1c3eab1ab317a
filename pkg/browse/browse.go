package browse

import (
	"sort"

	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/database"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/models"
)

// SkillSource is the skill-offer store the browsing service reads from.
// Implementations own all durable state; this package only transforms
// query results.
type SkillSource interface {
	AvailableSkills() ([]database.SkillOffer, error)
	SkillsByCategory(category string) ([]database.SkillOffer, error)
	SearchSkills(term string) ([]database.SkillOffer, error)
	AllCategories() ([]string, error)
}

// Service answers browse and statistics queries over a skill source
type Service struct {
	Source SkillSource
}

// NewService creates a browsing service backed by the given source
func NewService(source SkillSource) *Service {
	return &Service{Source: source}
}

// Browse selects offers (search term wins over category, else everything
// available), sorts them, and returns the requested page along with the
// pre-pagination total.
func (s *Service) Browse(opts models.BrowseOptions) (*models.BrowseResult, error) {
	var offers []database.SkillOffer
	var err error

	switch {
	case opts.SearchTerm != "":
		offers, err = s.Source.SearchSkills(opts.SearchTerm)
	case opts.Category != "":
		offers, err = s.Source.SkillsByCategory(opts.Category)
	default:
		offers, err = s.Source.AvailableSkills()
	}
	if err != nil {
		return nil, err
	}

	sorted := SortOffers(offers, opts.SortBy)
	page, total, hasMore := Paginate(sorted, opts.Offset, opts.Limit)

	return &models.BrowseResult{
		Offers:  page,
		Total:   total,
		HasMore: hasMore,
	}, nil
}

// Categories returns every category label in use
func (s *Service) Categories() ([]string, error) {
	return s.Source.AllCategories()
}

// Statistics aggregates category counts and recency over all available
// offers. Top categories are ordered by count descending; equal counts
// keep first-seen order.
func (s *Service) Statistics() (*models.SkillStatistics, error) {
	offers, err := s.Source.AvailableSkills()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, offer := range offers {
		for _, cat := range offer.Categories {
			if _, seen := counts[cat]; !seen {
				order = append(order, cat)
			}
			counts[cat]++
		}
	}

	top := make([]models.CategoryCount, 0, len(order))
	for _, cat := range order {
		top = append(top, models.CategoryCount{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > 5 {
		top = top[:5]
	}

	recent := SortOffers(offers, models.SortNewest)
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &models.SkillStatistics{
		TotalOffers:   len(offers),
		TopCategories: top,
		RecentOffers:  recent,
	}, nil
}

// SortOffers returns a sorted copy of offers; the input slice is never
// reordered. Unknown criteria fall back to newest-first. The sort is
// stable, so ties keep their incoming order.
func SortOffers(offers []database.SkillOffer, sortBy string) []database.SkillOffer {
	out := append([]database.SkillOffer(nil), offers...)

	switch sortBy {
	case models.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case models.SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SkillName < out[j].SkillName
		})
	case models.SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			return firstCategory(out[i]) < firstCategory(out[j])
		})
	default: // models.SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

func firstCategory(offer database.SkillOffer) string {
	if len(offer.Categories) == 0 {
		return ""
	}
	return offer.Categories[0]
}

// Paginate slices offers by offset/limit. Offset defaults to 0, a
// non-positive limit means "all remaining". hasMore reports whether
// offset+limit < total.
func Paginate(offers []database.SkillOffer, offset, limit int) ([]database.SkillOffer, int, bool) {
	total := len(offers)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	if limit <= 0 {
		limit = total - offset
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return offers[offset:end], total, offset+limit < total
}
