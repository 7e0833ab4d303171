// Package at holds the Austrian public holiday tables.
package at

import (
	"time"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

// Federal states (Bundesländer), numbered as in ISO 3166-2:AT.
const (
	Burgenland   jurisdiction.Subdivision = "AT-1"
	Carinthia    jurisdiction.Subdivision = "AT-2"
	LowerAustria jurisdiction.Subdivision = "AT-3"
	UpperAustria jurisdiction.Subdivision = "AT-4"
	Salzburg     jurisdiction.Subdivision = "AT-5"
	Styria       jurisdiction.Subdivision = "AT-6"
	Tyrol        jurisdiction.Subdivision = "AT-7"
	Vorarlberg   jurisdiction.Subdivision = "AT-8"
	Vienna       jurisdiction.Subdivision = "AT-9"
)

var states = []jurisdiction.SubdivisionInfo{
	{Code: Burgenland, Name: "Burgenland"},
	{Code: Carinthia, Name: "Carinthia"},
	{Code: LowerAustria, Name: "Lower Austria"},
	{Code: UpperAustria, Name: "Upper Austria"},
	{Code: Salzburg, Name: "Salzburg"},
	{Code: Styria, Name: "Styria"},
	{Code: Tyrol, Name: "Tyrol"},
	{Code: Vorarlberg, Name: "Vorarlberg"},
	{Code: Vienna, Name: "Vienna"},
}

var national = rules.Set{
	{Name: "New Year's Day", Rule: rules.FixedDate{Month: time.January, Day: 1}},
	{Name: "Epiphany", Rule: rules.FixedDate{Month: time.January, Day: 6}},
	{Name: "Easter Monday", Rule: rules.EasterOffset{Days: 1}},
	{Name: "National Holiday", Rule: rules.FixedDate{Month: time.May, Day: 1}},
	{Name: "Ascension Day", Rule: rules.EasterOffset{Days: 39}},
	{Name: "Whit Monday", Rule: rules.EasterOffset{Days: 50}},
	{Name: "Corpus Christi", Rule: rules.EasterOffset{Days: 60}},
	{Name: "Assumption Day", Rule: rules.FixedDate{Month: time.August, Day: 15}},
	{Name: "National Day", Rule: rules.FixedDate{Month: time.October, Day: 26}, From: 1965},
	{Name: "All Saints' Day", Rule: rules.FixedDate{Month: time.November, Day: 1}},
	{Name: "Immaculate Conception", Rule: rules.FixedDate{Month: time.December, Day: 8}},
	{Name: "Christmas Day", Rule: rules.FixedDate{Month: time.December, Day: 25}},
	{Name: "St. Stephen's Day", Rule: rules.FixedDate{Month: time.December, Day: 26}},
}

// New returns the Austrian rule tables. Regional entries are the patron saint
// days of each state.
func New() *jurisdiction.Table {
	t := jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.Austria,
		ISO3:    "AUT",
		Name:    "Austria",
	}, national, states)

	t.Observe(rules.Entry{Name: "St. Joseph's Day", Rule: rules.FixedDate{Month: time.March, Day: 19}},
		Carinthia, Styria, Tyrol, Vorarlberg)
	t.Observe(rules.Entry{Name: "St. Florian's Day", Rule: rules.FixedDate{Month: time.May, Day: 4}},
		UpperAustria)
	t.Observe(rules.Entry{Name: "St. Rupert's Day", Rule: rules.FixedDate{Month: time.September, Day: 24}},
		Salzburg)
	t.Observe(rules.Entry{Name: "Plebiscite Day", Rule: rules.FixedDate{Month: time.October, Day: 10}, From: 1920},
		Carinthia)
	t.Observe(rules.Entry{Name: "St. Martin's Day", Rule: rules.FixedDate{Month: time.November, Day: 11}},
		Burgenland)
	t.Observe(rules.Entry{Name: "St. Leopold's Day", Rule: rules.FixedDate{Month: time.November, Day: 15}},
		LowerAustria, Vienna)

	return t
}
