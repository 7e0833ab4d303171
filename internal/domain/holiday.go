package domain

import (
	"almanac/internal/calendar"
)

// Holiday is one dated occurrence of a public holiday.
//
// Jurisdiction is the identifier of the rule set that produced the occurrence:
// the ISO 3166-1 alpha-2 country code for national rules ("DE") or the
// ISO 3166-2 subdivision code for regional rules ("DE-BY").
type Holiday struct {
	Name         string        `json:"name"`
	Date         calendar.Date `json:"date"`
	Jurisdiction string        `json:"jurisdiction"`
}

// Compare orders holidays by date, then by name.
func (h Holiday) Compare(other Holiday) int {
	if c := h.Date.Compare(other.Date); c != 0 {
		return c
	}
	switch {
	case h.Name < other.Name:
		return -1
	case h.Name > other.Name:
		return 1
	default:
		return 0
	}
}

// Key identifies an occurrence for de-duplication. The producing jurisdiction
// is not part of it.
type Key struct {
	Date calendar.Date
	Name string
}

func (h Holiday) Key() Key {
	return Key{Date: h.Date, Name: h.Name}
}
