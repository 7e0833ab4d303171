// Package holidays turns a jurisdiction and a year into the final, ordered
// list of holidays, and exposes that computation as a service.
package holidays

import (
	"slices"

	"almanac/internal/calendar"
	"almanac/internal/domain"
	"almanac/internal/jurisdiction"
)

// Aggregate removes repeated (date, name) occurrences, keeping the first one,
// and orders the rest by date then name. The input is not modified.
func Aggregate(hs []domain.Holiday) []domain.Holiday {
	seen := make(map[domain.Key]struct{}, len(hs))
	out := make([]domain.Holiday, 0, len(hs))
	for _, h := range hs {
		if _, dup := seen[h.Key()]; dup {
			continue
		}
		seen[h.Key()] = struct{}{}
		out = append(out, h)
	}
	slices.SortStableFunc(out, domain.Holiday.Compare)
	return out
}

// Compute evaluates model for year and aggregates the result.
func Compute(model jurisdiction.Model, year int) ([]domain.Holiday, error) {
	if err := calendar.CheckYear(year); err != nil {
		return nil, err
	}
	hs, err := model.AllHolidays(year)
	if err != nil {
		return nil, err
	}
	return Aggregate(hs), nil
}
