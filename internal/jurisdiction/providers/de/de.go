// Package de holds the German public holiday tables.
package de

import (
	"time"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

// Federal states (Länder).
const (
	BadenWuerttemberg     jurisdiction.Subdivision = "DE-BW"
	Bavaria               jurisdiction.Subdivision = "DE-BY"
	Berlin                jurisdiction.Subdivision = "DE-BE"
	Brandenburg           jurisdiction.Subdivision = "DE-BB"
	Bremen                jurisdiction.Subdivision = "DE-HB"
	Hamburg               jurisdiction.Subdivision = "DE-HH"
	Hesse                 jurisdiction.Subdivision = "DE-HE"
	MecklenburgVorpommern jurisdiction.Subdivision = "DE-MV"
	LowerSaxony           jurisdiction.Subdivision = "DE-NI"
	NorthRhineWestphalia  jurisdiction.Subdivision = "DE-NW"
	RhinelandPalatinate   jurisdiction.Subdivision = "DE-RP"
	Saarland              jurisdiction.Subdivision = "DE-SL"
	Saxony                jurisdiction.Subdivision = "DE-SN"
	SaxonyAnhalt          jurisdiction.Subdivision = "DE-ST"
	SchleswigHolstein     jurisdiction.Subdivision = "DE-SH"
	Thuringia             jurisdiction.Subdivision = "DE-TH"
)

var states = []jurisdiction.SubdivisionInfo{
	{Code: BadenWuerttemberg, Name: "Baden-Württemberg"},
	{Code: Bavaria, Name: "Bavaria"},
	{Code: Berlin, Name: "Berlin"},
	{Code: Brandenburg, Name: "Brandenburg"},
	{Code: Bremen, Name: "Bremen"},
	{Code: Hamburg, Name: "Hamburg"},
	{Code: Hesse, Name: "Hesse"},
	{Code: MecklenburgVorpommern, Name: "Mecklenburg-Vorpommern"},
	{Code: LowerSaxony, Name: "Lower Saxony"},
	{Code: NorthRhineWestphalia, Name: "North Rhine-Westphalia"},
	{Code: RhinelandPalatinate, Name: "Rhineland-Palatinate"},
	{Code: Saarland, Name: "Saarland"},
	{Code: Saxony, Name: "Saxony"},
	{Code: SaxonyAnhalt, Name: "Saxony-Anhalt"},
	{Code: SchleswigHolstein, Name: "Schleswig-Holstein"},
	{Code: Thuringia, Name: "Thuringia"},
}

const reformationDay = "Reformation Day"

var national = rules.Set{
	{Name: "New Year's Day", Rule: rules.FixedDate{Month: time.January, Day: 1}},
	{Name: "Good Friday", Rule: rules.EasterOffset{Days: -2}},
	{Name: "Easter Monday", Rule: rules.EasterOffset{Days: 1}},
	{Name: "Labour Day", Rule: rules.FixedDate{Month: time.May, Day: 1}},
	{Name: "Ascension Day", Rule: rules.EasterOffset{Days: 39}},
	{Name: "Whit Monday", Rule: rules.EasterOffset{Days: 50}},
	{Name: "German Unity Day", Rule: rules.FixedDate{Month: time.October, Day: 3}, From: 1990},
	// 500th anniversary of the Reformation, a one-off nationwide holiday.
	{Name: reformationDay, Rule: rules.FixedDate{Month: time.October, Day: 31}, From: 2017, To: 2017},
	{Name: "Christmas Day", Rule: rules.FixedDate{Month: time.December, Day: 25}},
	{Name: "Second Day of Christmas", Rule: rules.FixedDate{Month: time.December, Day: 26}},
}

// New returns the German rule tables.
func New() *jurisdiction.Table {
	t := jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.Germany,
		ISO3:    "DEU",
		Name:    "Germany",
	}, national, states)

	t.Observe(rules.Entry{Name: "Epiphany", Rule: rules.FixedDate{Month: time.January, Day: 6}},
		BadenWuerttemberg, Bavaria, SaxonyAnhalt)

	t.Observe(rules.Entry{Name: "International Women's Day", Rule: rules.FixedDate{Month: time.March, Day: 8}, From: 2019},
		Berlin)
	t.Observe(rules.Entry{Name: "International Women's Day", Rule: rules.FixedDate{Month: time.March, Day: 8}, From: 2023},
		MecklenburgVorpommern)

	t.Observe(rules.Entry{Name: "Easter Sunday", Rule: rules.EasterOffset{Days: 0}},
		Brandenburg)

	t.Observe(rules.Entry{Name: "Liberation Day", Rule: rules.FixedDate{Month: time.May, Day: 8}, From: 2020, To: 2020},
		Berlin)
	t.Observe(rules.Entry{Name: "Liberation Day", Rule: rules.FixedDate{Month: time.May, Day: 8}, From: 2025, To: 2025},
		Berlin)

	t.Observe(rules.Entry{Name: "Whit Sunday", Rule: rules.EasterOffset{Days: 49}},
		Brandenburg)

	t.Observe(rules.Entry{Name: "Corpus Christi", Rule: rules.EasterOffset{Days: 60}},
		BadenWuerttemberg, Bavaria, Hesse, NorthRhineWestphalia, RhinelandPalatinate, Saarland)

	t.Observe(rules.Entry{Name: "Assumption Day", Rule: rules.FixedDate{Month: time.August, Day: 15}},
		Saarland)

	t.Observe(rules.Entry{Name: "World Children's Day", Rule: rules.FixedDate{Month: time.September, Day: 20}, From: 2019},
		Thuringia)

	t.Observe(rules.Entry{Name: reformationDay, Rule: rules.FixedDate{Month: time.October, Day: 31}},
		Brandenburg, MecklenburgVorpommern, Saxony, SaxonyAnhalt, Thuringia)
	t.Observe(rules.Entry{Name: reformationDay, Rule: rules.FixedDate{Month: time.October, Day: 31}, From: 2018},
		Bremen, Hamburg, LowerSaxony, SchleswigHolstein)

	t.Observe(rules.Entry{Name: "All Saints' Day", Rule: rules.FixedDate{Month: time.November, Day: 1}},
		BadenWuerttemberg, Bavaria, NorthRhineWestphalia, RhinelandPalatinate, Saarland)

	t.Observe(rules.Entry{Name: "Repentance and Prayer Day", Rule: rules.WeekdayRelative{
		Month: time.November, Day: 23, Weekday: time.Wednesday, Direction: rules.Before,
	}},
		Saxony)

	return t
}
