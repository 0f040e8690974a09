// Package search holds the venue filter predicate used by the catalog search.
//
// A venue matches a filter when every constraint the filter sets holds:
// the city contains the location (case-insensitive), the price lies in the
// inclusive price range, the guest count fits the capacity range, every
// requested amenity is offered, and the requested date is available.
// Unset constraints (empty location, zero guest count, max price <= 0, no
// amenities, empty date) never exclude a venue, so the zero Filter is the
// identity. Results keep input order; there is no ranking or pagination.
package search

import (
	"strings"

	"venuehub/pkg/model"
)

// FilterVenues returns the venues matching f, preserving input order.
func FilterVenues(venues []*model.Venue, f model.Filter) []*model.Venue {
	out := make([]*model.Venue, 0, len(venues))
	location := strings.ToLower(strings.TrimSpace(f.Location))
	for _, v := range venues {
		if v != nil && matches(v, f, location) {
			out = append(out, v)
		}
	}
	return out
}

// Matches reports whether a single venue satisfies f.
func Matches(v *model.Venue, f model.Filter) bool {
	return matches(v, f, strings.ToLower(strings.TrimSpace(f.Location)))
}

func matches(v *model.Venue, f model.Filter, location string) bool {
	if location != "" && !strings.Contains(strings.ToLower(v.City), location) {
		return false
	}

	if v.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && v.Price > f.MaxPrice {
		return false
	}

	if f.GuestCount > 0 && !v.Accommodates(f.GuestCount) {
		return false
	}

	for _, amenity := range f.Amenities {
		if !v.HasAmenity(amenity) {
			return false
		}
	}

	if f.Date != "" && !v.IsAvailableOn(f.Date) {
		return false
	}

	return true
}
