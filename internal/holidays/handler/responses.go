package handler

import (
	"almanac/internal/domain"
	"almanac/internal/holidays"
	"almanac/internal/jurisdiction"
)

// JurisdictionResponse identifies a jurisdiction in responses.
type JurisdictionResponse struct {
	ID          string `json:"id"`
	Country     string `json:"country"`
	Subdivision string `json:"subdivision,omitempty"`
}

// HolidaysResponse is the HTTP response for GET /holidays/{jurisdiction}/{year}.
type HolidaysResponse struct {
	Jurisdiction JurisdictionResponse `json:"jurisdiction"`
	Year         int                  `json:"year"`
	Holidays     []domain.Holiday     `json:"holidays"`
}

// HolidaysOnResponse is the HTTP response for GET /holidays/{jurisdiction}/on/{date}.
type HolidaysOnResponse struct {
	Jurisdiction JurisdictionResponse `json:"jurisdiction"`
	Date         string               `json:"date"`
	IsHoliday    bool                 `json:"is_holiday"`
	Holidays     []domain.Holiday     `json:"holidays"`
}

// CalendarsResponse is the HTTP response for GET /calendars.
type CalendarsResponse struct {
	Calendars []holidays.Calendar `json:"calendars"`
}

// FromJurisdiction converts either jurisdiction shape to its response form.
func FromJurisdiction(j jurisdiction.Jurisdiction) JurisdictionResponse {
	switch j := j.(type) {
	case jurisdiction.Country:
		return JurisdictionResponse{ID: j.ID(), Country: j.String()}
	case jurisdiction.Qualified:
		return JurisdictionResponse{ID: j.ID(), Country: j.Country.String(), Subdivision: j.Subdivision.String()}
	default:
		return JurisdictionResponse{}
	}
}
