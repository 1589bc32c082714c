package content

import (
	"context"
	"fmt"
	"strings"
)

// SearchResults groups keyword matches across the public entity families.
type SearchResults struct {
	Societies      []*Society       `json:"societies"`
	Councils       []*Council       `json:"councils"`
	PastEvents     []*PastEvent     `json:"past_events"`
	UpcomingEvents []*UpcomingEvent `json:"upcoming_events"`
	Achievements   []*Achievement   `json:"achievements"`
}

// PortalStats is the count summary shown on the portal landing page.
type PortalStats struct {
	Societies      int `json:"societies"`
	Councils       int `json:"councils"`
	PastEvents     int `json:"past_events"`
	UpcomingEvents int `json:"upcoming_events"`
	Achievements   int `json:"achievements"`
	GalleryItems   int `json:"gallery_items"`
}

// Search performs a case-insensitive keyword match over names, titles, and
// descriptions of the public entities. Inactive societies and councils are
// excluded.
func (s *Service) Search(ctx context.Context, query string) (*SearchResults, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	match := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), query) {
				return true
			}
		}
		return false
	}

	results := &SearchResults{}

	societies, err := s.store.Societies().List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, soc := range societies {
		if match(soc.Name, soc.Description) {
			results.Societies = append(results.Societies, soc)
		}
	}

	councils, err := s.store.Councils().List(ctx, true)
	if err != nil {
		return nil, err
	}
	for _, c := range councils {
		if match(c.Name, c.Description) {
			results.Councils = append(results.Councils, c)
		}
	}

	past, err := s.store.PastEvents().List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range past {
		if match(e.Title, e.Description, e.Venue) {
			results.PastEvents = append(results.PastEvents, e)
		}
	}

	upcoming, err := s.store.UpcomingEvents().List(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range upcoming {
		if match(e.Title, e.Description, e.Venue) {
			results.UpcomingEvents = append(results.UpcomingEvents, e)
		}
	}

	achievements, err := s.store.Achievements().List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range achievements {
		if match(a.Title, a.Description, a.AwardCategory) {
			results.Achievements = append(results.Achievements, a)
		}
	}

	return results, nil
}

// Stats counts the public content families.
func (s *Service) Stats(ctx context.Context) (*PortalStats, error) {
	stats := &PortalStats{}

	societies, err := s.store.Societies().List(ctx, true)
	if err != nil {
		return nil, err
	}
	stats.Societies = len(societies)

	councils, err := s.store.Councils().List(ctx, true)
	if err != nil {
		return nil, err
	}
	stats.Councils = len(councils)

	past, err := s.store.PastEvents().List(ctx)
	if err != nil {
		return nil, err
	}
	stats.PastEvents = len(past)

	upcoming, err := s.store.UpcomingEvents().List(ctx)
	if err != nil {
		return nil, err
	}
	stats.UpcomingEvents = len(upcoming)

	achievements, err := s.store.Achievements().List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Achievements = len(achievements)

	gallery, err := s.store.Gallery().List(ctx)
	if err != nil {
		return nil, err
	}
	stats.GalleryItems = len(gallery)

	return stats, nil
}
