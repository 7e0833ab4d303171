// Package us holds the United States federal and state holiday tables.
//
// The national set is the federal calendar (5 U.S.C. 6103). Federal holidays
// falling on a weekend are listed twice: once on the actual date and once as
// "(observed)" on the substitute weekday.
package us

import (
	"time"

	"almanac/internal/calendar"
	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

const (
	Alabama       jurisdiction.Subdivision = "US-AL"
	Alaska        jurisdiction.Subdivision = "US-AK"
	Arizona       jurisdiction.Subdivision = "US-AZ"
	Arkansas      jurisdiction.Subdivision = "US-AR"
	California    jurisdiction.Subdivision = "US-CA"
	Colorado      jurisdiction.Subdivision = "US-CO"
	Connecticut   jurisdiction.Subdivision = "US-CT"
	Delaware      jurisdiction.Subdivision = "US-DE"
	Florida       jurisdiction.Subdivision = "US-FL"
	Georgia       jurisdiction.Subdivision = "US-GA"
	Hawaii        jurisdiction.Subdivision = "US-HI"
	Idaho         jurisdiction.Subdivision = "US-ID"
	Illinois      jurisdiction.Subdivision = "US-IL"
	Indiana       jurisdiction.Subdivision = "US-IN"
	Iowa          jurisdiction.Subdivision = "US-IA"
	Kansas        jurisdiction.Subdivision = "US-KS"
	Kentucky      jurisdiction.Subdivision = "US-KY"
	Louisiana     jurisdiction.Subdivision = "US-LA"
	Maine         jurisdiction.Subdivision = "US-ME"
	Maryland      jurisdiction.Subdivision = "US-MD"
	Massachusetts jurisdiction.Subdivision = "US-MA"
	Michigan      jurisdiction.Subdivision = "US-MI"
	Minnesota     jurisdiction.Subdivision = "US-MN"
	Mississippi   jurisdiction.Subdivision = "US-MS"
	Missouri      jurisdiction.Subdivision = "US-MO"
	Montana       jurisdiction.Subdivision = "US-MT"
	Nebraska      jurisdiction.Subdivision = "US-NE"
	Nevada        jurisdiction.Subdivision = "US-NV"
	NewHampshire  jurisdiction.Subdivision = "US-NH"
	NewJersey     jurisdiction.Subdivision = "US-NJ"
	NewMexico     jurisdiction.Subdivision = "US-NM"
	NewYork       jurisdiction.Subdivision = "US-NY"
	NorthCarolina jurisdiction.Subdivision = "US-NC"
	NorthDakota   jurisdiction.Subdivision = "US-ND"
	Ohio          jurisdiction.Subdivision = "US-OH"
	Oklahoma      jurisdiction.Subdivision = "US-OK"
	Oregon        jurisdiction.Subdivision = "US-OR"
	Pennsylvania  jurisdiction.Subdivision = "US-PA"
	RhodeIsland   jurisdiction.Subdivision = "US-RI"
	SouthCarolina jurisdiction.Subdivision = "US-SC"
	SouthDakota   jurisdiction.Subdivision = "US-SD"
	Tennessee     jurisdiction.Subdivision = "US-TN"
	Texas         jurisdiction.Subdivision = "US-TX"
	Utah          jurisdiction.Subdivision = "US-UT"
	Vermont       jurisdiction.Subdivision = "US-VT"
	Virginia      jurisdiction.Subdivision = "US-VA"
	Washington    jurisdiction.Subdivision = "US-WA"
	WestVirginia  jurisdiction.Subdivision = "US-WV"
	Wisconsin     jurisdiction.Subdivision = "US-WI"
	Wyoming       jurisdiction.Subdivision = "US-WY"
)

var states = []jurisdiction.SubdivisionInfo{
	{Code: Alabama, Name: "Alabama"},
	{Code: Alaska, Name: "Alaska"},
	{Code: Arizona, Name: "Arizona"},
	{Code: Arkansas, Name: "Arkansas"},
	{Code: California, Name: "California"},
	{Code: Colorado, Name: "Colorado"},
	{Code: Connecticut, Name: "Connecticut"},
	{Code: Delaware, Name: "Delaware"},
	{Code: Florida, Name: "Florida"},
	{Code: Georgia, Name: "Georgia"},
	{Code: Hawaii, Name: "Hawaii"},
	{Code: Idaho, Name: "Idaho"},
	{Code: Illinois, Name: "Illinois"},
	{Code: Indiana, Name: "Indiana"},
	{Code: Iowa, Name: "Iowa"},
	{Code: Kansas, Name: "Kansas"},
	{Code: Kentucky, Name: "Kentucky"},
	{Code: Louisiana, Name: "Louisiana"},
	{Code: Maine, Name: "Maine"},
	{Code: Maryland, Name: "Maryland"},
	{Code: Massachusetts, Name: "Massachusetts"},
	{Code: Michigan, Name: "Michigan"},
	{Code: Minnesota, Name: "Minnesota"},
	{Code: Mississippi, Name: "Mississippi"},
	{Code: Missouri, Name: "Missouri"},
	{Code: Montana, Name: "Montana"},
	{Code: Nebraska, Name: "Nebraska"},
	{Code: Nevada, Name: "Nevada"},
	{Code: NewHampshire, Name: "New Hampshire"},
	{Code: NewJersey, Name: "New Jersey"},
	{Code: NewMexico, Name: "New Mexico"},
	{Code: NewYork, Name: "New York"},
	{Code: NorthCarolina, Name: "North Carolina"},
	{Code: NorthDakota, Name: "North Dakota"},
	{Code: Ohio, Name: "Ohio"},
	{Code: Oklahoma, Name: "Oklahoma"},
	{Code: Oregon, Name: "Oregon"},
	{Code: Pennsylvania, Name: "Pennsylvania"},
	{Code: RhodeIsland, Name: "Rhode Island"},
	{Code: SouthCarolina, Name: "South Carolina"},
	{Code: SouthDakota, Name: "South Dakota"},
	{Code: Tennessee, Name: "Tennessee"},
	{Code: Texas, Name: "Texas"},
	{Code: Utah, Name: "Utah"},
	{Code: Vermont, Name: "Vermont"},
	{Code: Virginia, Name: "Virginia"},
	{Code: Washington, Name: "Washington"},
	{Code: WestVirginia, Name: "West Virginia"},
	{Code: Wisconsin, Name: "Wisconsin"},
	{Code: Wyoming, Name: "Wyoming"},
}

var (
	newYear      = rules.FixedDate{Month: time.January, Day: 1}
	juneteenth   = rules.FixedDate{Month: time.June, Day: 19}
	independence = rules.FixedDate{Month: time.July, Day: 4}
	veterans     = rules.FixedDate{Month: time.November, Day: 11}
	christmas    = rules.FixedDate{Month: time.December, Day: 25}
	thanksgiving = rules.NthWeekday{Month: time.November, Weekday: time.Thursday, N: 4}
)

// observed is the substitute weekday of a federal holiday. New Year's Day only
// moves forward so the substitute never lands in the previous year.
func observed(base rules.Rule, policy calendar.WeekendPolicy) rules.Rule {
	return rules.ObservedShift{Base: base, Policy: policy, SubstituteOnly: true}
}

var national = rules.Set{
	{Name: "New Year's Day", Rule: newYear},
	{Name: "New Year's Day (observed)", Rule: observed(newYear, calendar.SundayToMonday)},
	{Name: "Martin Luther King Jr. Day", Rule: rules.NthWeekday{Month: time.January, Weekday: time.Monday, N: 3}, From: 1986},
	{Name: "Washington's Birthday", Rule: rules.FixedDate{Month: time.February, Day: 22}, To: 1970},
	{Name: "Washington's Birthday", Rule: rules.NthWeekday{Month: time.February, Weekday: time.Monday, N: 3}, From: 1971},
	{Name: "Memorial Day", Rule: rules.FixedDate{Month: time.May, Day: 30}, From: 1868, To: 1970},
	{Name: "Memorial Day", Rule: rules.NthWeekday{Month: time.May, Weekday: time.Monday, N: -1}, From: 1971},
	{Name: "Juneteenth National Independence Day", Rule: juneteenth, From: 2021},
	{Name: "Juneteenth National Independence Day (observed)", Rule: observed(juneteenth, calendar.NearestWeekday), From: 2021},
	{Name: "Independence Day", Rule: independence},
	{Name: "Independence Day (observed)", Rule: observed(independence, calendar.NearestWeekday)},
	{Name: "Labor Day", Rule: rules.NthWeekday{Month: time.September, Weekday: time.Monday, N: 1}, From: 1894},
	{Name: "Columbus Day", Rule: rules.FixedDate{Month: time.October, Day: 12}, From: 1937, To: 1970},
	{Name: "Columbus Day", Rule: rules.NthWeekday{Month: time.October, Weekday: time.Monday, N: 2}, From: 1971},
	{Name: "Veterans Day", Rule: veterans, From: 1938},
	{Name: "Veterans Day (observed)", Rule: observed(veterans, calendar.NearestWeekday), From: 1938},
	{Name: "Thanksgiving Day", Rule: thanksgiving, From: 1942},
	{Name: "Christmas Day", Rule: christmas},
	{Name: "Christmas Day (observed)", Rule: observed(christmas, calendar.NearestWeekday)},
}

// New returns the US rule tables.
func New() *jurisdiction.Table {
	t := jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.UnitedStates,
		ISO3:    "USA",
		Name:    "United States",
	}, national, states)

	t.Observe(rules.Entry{Name: "Lincoln's Birthday", Rule: rules.FixedDate{Month: time.February, Day: 12}},
		Connecticut, Illinois, NewYork)
	t.Observe(rules.Entry{Name: "Mardi Gras", Rule: rules.EasterOffset{Days: -47}},
		Louisiana)
	t.Observe(rules.Entry{Name: "Town Meeting Day", Rule: rules.NthWeekday{Month: time.March, Weekday: time.Tuesday, N: 1}},
		Vermont)
	t.Observe(rules.Entry{Name: "Casimir Pulaski Day", Rule: rules.NthWeekday{Month: time.March, Weekday: time.Monday, N: 1}, From: 1978},
		Illinois)
	t.Observe(rules.Entry{Name: "Texas Independence Day", Rule: rules.FixedDate{Month: time.March, Day: 2}},
		Texas)
	t.Observe(rules.Entry{Name: "Prince Kuhio Day", Rule: rules.FixedDate{Month: time.March, Day: 26}, From: 1949},
		Hawaii)
	t.Observe(rules.Entry{Name: "Seward's Day", Rule: rules.NthWeekday{Month: time.March, Weekday: time.Monday, N: -1}, From: 1918},
		Alaska)
	t.Observe(rules.Entry{Name: "Cesar Chavez Day", Rule: rules.FixedDate{Month: time.March, Day: 31}, From: 2000},
		California)
	t.Observe(rules.Entry{Name: "Good Friday", Rule: rules.EasterOffset{Days: -2}},
		Connecticut, Delaware, Indiana, Kentucky, Louisiana, NewJersey, NorthCarolina, Tennessee)
	t.Observe(rules.Entry{Name: "Patriots' Day", Rule: rules.NthWeekday{Month: time.April, Weekday: time.Monday, N: 3}, From: 1969},
		Maine, Massachusetts)
	t.Observe(rules.Entry{Name: "San Jacinto Day", Rule: rules.FixedDate{Month: time.April, Day: 21}},
		Texas)
	t.Observe(rules.Entry{Name: "Arbor Day", Rule: rules.NthWeekday{Month: time.April, Weekday: time.Friday, N: -1}, From: 1989},
		Nebraska)
	t.Observe(rules.Entry{Name: "Truman Day", Rule: rules.FixedDate{Month: time.May, Day: 8}, From: 1949},
		Missouri)
	t.Observe(rules.Entry{Name: "Kamehameha Day", Rule: rules.FixedDate{Month: time.June, Day: 11}, From: 1872},
		Hawaii)
	t.Observe(rules.Entry{Name: "Emancipation Day", Rule: juneteenth, From: 1980},
		Texas)
	t.Observe(rules.Entry{Name: "West Virginia Day", Rule: rules.FixedDate{Month: time.June, Day: 20}, From: 1927},
		WestVirginia)
	t.Observe(rules.Entry{Name: "Pioneer Day", Rule: rules.FixedDate{Month: time.July, Day: 24}, From: 1849},
		Utah)
	t.Observe(rules.Entry{Name: "Victory Day", Rule: rules.NthWeekday{Month: time.August, Weekday: time.Monday, N: 2}, From: 1948},
		RhodeIsland)
	t.Observe(rules.Entry{Name: "Bennington Battle Day", Rule: rules.FixedDate{Month: time.August, Day: 16}},
		Vermont)
	t.Observe(rules.Entry{Name: "Statehood Day", Rule: rules.NthWeekday{Month: time.August, Weekday: time.Friday, N: 3}, From: 1969},
		Hawaii)
	t.Observe(rules.Entry{Name: "Lyndon Baines Johnson Day", Rule: rules.FixedDate{Month: time.August, Day: 27}, From: 1973},
		Texas)
	t.Observe(rules.Entry{Name: "Alaska Day", Rule: rules.FixedDate{Month: time.October, Day: 18}, From: 1917},
		Alaska)
	t.Observe(rules.Entry{Name: "Nevada Day", Rule: rules.NthWeekday{Month: time.October, Weekday: time.Friday, N: -1}, From: 2000},
		Nevada)
	t.Observe(rules.Entry{Name: "Day after Thanksgiving", Rule: rules.DayOffset{Base: thanksgiving, Days: 1}, From: 1942},
		California, Delaware, Florida, Indiana, Iowa, Kansas, Kentucky, Maine, Maryland, Michigan, Minnesota, Nebraska,
		Nevada, NewHampshire, NewMexico, NorthCarolina, Oklahoma, Pennsylvania, SouthCarolina, Texas, Washington,
		WestVirginia)
	t.Observe(rules.Entry{Name: "Christmas Eve", Rule: rules.FixedDate{Month: time.December, Day: 24}},
		Kentucky, NorthCarolina, SouthCarolina, Texas)
	t.Observe(rules.Entry{Name: "Day after Christmas", Rule: rules.FixedDate{Month: time.December, Day: 26}},
		NorthCarolina, SouthCarolina, Texas)

	return t
}
