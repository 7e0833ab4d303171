// Package lu holds the Luxembourg public holiday table.
package lu

import (
	"time"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

var national = rules.Set{
	{Name: "New Year's Day", Rule: rules.FixedDate{Month: time.January, Day: 1}},
	{Name: "Easter Monday", Rule: rules.EasterOffset{Days: 1}},
	{Name: "Labour Day", Rule: rules.FixedDate{Month: time.May, Day: 1}},
	{Name: "Europe Day", Rule: rules.FixedDate{Month: time.May, Day: 9}, From: 2019},
	{Name: "Ascension Day", Rule: rules.EasterOffset{Days: 39}},
	{Name: "Whit Monday", Rule: rules.EasterOffset{Days: 50}},
	{Name: "National Day", Rule: rules.FixedDate{Month: time.June, Day: 23}},
	{Name: "Assumption Day", Rule: rules.FixedDate{Month: time.August, Day: 15}},
	{Name: "All Saints' Day", Rule: rules.FixedDate{Month: time.November, Day: 1}},
	{Name: "Christmas Day", Rule: rules.FixedDate{Month: time.December, Day: 25}},
	{Name: "St. Stephen's Day", Rule: rules.FixedDate{Month: time.December, Day: 26}},
}

func New() *jurisdiction.Table {
	return jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.Luxembourg,
		ISO3:    "LUX",
		Name:    "Luxembourg",
	}, national, nil)
}
