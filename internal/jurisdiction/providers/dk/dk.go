// Package dk holds the Danish public holiday table. Denmark has a single
// national calendar.
package dk

import (
	"time"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

var national = rules.Set{
	{Name: "New Year's Day", Rule: rules.FixedDate{Month: time.January, Day: 1}},
	{Name: "Maundy Thursday", Rule: rules.EasterOffset{Days: -3}},
	{Name: "Good Friday", Rule: rules.EasterOffset{Days: -2}},
	{Name: "Easter Sunday", Rule: rules.EasterOffset{Days: 0}},
	{Name: "Easter Monday", Rule: rules.EasterOffset{Days: 1}},
	// Store Bededag was abolished from 2024.
	{Name: "General Prayer Day", Rule: rules.EasterOffset{Days: 26}, From: 1686, To: 2023},
	{Name: "Ascension Day", Rule: rules.EasterOffset{Days: 39}},
	{Name: "Whit Sunday", Rule: rules.EasterOffset{Days: 49}},
	{Name: "Whit Monday", Rule: rules.EasterOffset{Days: 50}},
	{Name: "Constitution Day", Rule: rules.FixedDate{Month: time.June, Day: 5}, From: 1849},
	{Name: "Christmas Day", Rule: rules.FixedDate{Month: time.December, Day: 25}},
	{Name: "Second Day of Christmas", Rule: rules.FixedDate{Month: time.December, Day: 26}},
}

// New returns the Danish rule table.
func New() *jurisdiction.Table {
	return jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.Denmark,
		ISO3:    "DNK",
		Name:    "Denmark",
	}, national, nil)
}
