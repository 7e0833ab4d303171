// Package es holds the Spanish public holiday tables. Subdivisions are the
// seventeen autonomous communities and the two autonomous cities.
package es

import (
	"time"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

const (
	Andalusia          jurisdiction.Subdivision = "ES-AN"
	Aragon             jurisdiction.Subdivision = "ES-AR"
	Asturias           jurisdiction.Subdivision = "ES-AS"
	BalearicIslands    jurisdiction.Subdivision = "ES-IB"
	CanaryIslands      jurisdiction.Subdivision = "ES-CN"
	Cantabria          jurisdiction.Subdivision = "ES-CB"
	CastileAndLeon     jurisdiction.Subdivision = "ES-CL"
	CastileLaMancha    jurisdiction.Subdivision = "ES-CM"
	Catalonia          jurisdiction.Subdivision = "ES-CT"
	Extremadura        jurisdiction.Subdivision = "ES-EX"
	Galicia            jurisdiction.Subdivision = "ES-GA"
	Madrid             jurisdiction.Subdivision = "ES-MD"
	Murcia             jurisdiction.Subdivision = "ES-MC"
	Navarre            jurisdiction.Subdivision = "ES-NC"
	BasqueCountry      jurisdiction.Subdivision = "ES-PV"
	LaRioja            jurisdiction.Subdivision = "ES-RI"
	ValencianCommunity jurisdiction.Subdivision = "ES-VC"
	Ceuta              jurisdiction.Subdivision = "ES-CE"
	Melilla            jurisdiction.Subdivision = "ES-ML"
)

var communities = []jurisdiction.SubdivisionInfo{
	{Code: Andalusia, Name: "Andalusia"},
	{Code: Aragon, Name: "Aragon"},
	{Code: Asturias, Name: "Asturias"},
	{Code: BalearicIslands, Name: "Balearic Islands"},
	{Code: CanaryIslands, Name: "Canary Islands"},
	{Code: Cantabria, Name: "Cantabria"},
	{Code: CastileAndLeon, Name: "Castile and León"},
	{Code: CastileLaMancha, Name: "Castilla-La Mancha"},
	{Code: Catalonia, Name: "Catalonia"},
	{Code: Extremadura, Name: "Extremadura"},
	{Code: Galicia, Name: "Galicia"},
	{Code: Madrid, Name: "Community of Madrid"},
	{Code: Murcia, Name: "Region of Murcia"},
	{Code: Navarre, Name: "Navarre"},
	{Code: BasqueCountry, Name: "Basque Country"},
	{Code: LaRioja, Name: "La Rioja"},
	{Code: ValencianCommunity, Name: "Valencian Community"},
	{Code: Ceuta, Name: "Ceuta"},
	{Code: Melilla, Name: "Melilla"},
}

var national = rules.Set{
	{Name: "New Year's Day", Rule: rules.FixedDate{Month: time.January, Day: 1}},
	{Name: "Epiphany", Rule: rules.FixedDate{Month: time.January, Day: 6}},
	{Name: "Good Friday", Rule: rules.EasterOffset{Days: -2}},
	{Name: "Labour Day", Rule: rules.FixedDate{Month: time.May, Day: 1}},
	{Name: "Assumption Day", Rule: rules.FixedDate{Month: time.August, Day: 15}},
	{Name: "National Day of Spain", Rule: rules.FixedDate{Month: time.October, Day: 12}},
	{Name: "All Saints' Day", Rule: rules.FixedDate{Month: time.November, Day: 1}},
	{Name: "Constitution Day", Rule: rules.FixedDate{Month: time.December, Day: 6}, From: 1979},
	{Name: "Immaculate Conception", Rule: rules.FixedDate{Month: time.December, Day: 8}},
	{Name: "Christmas Day", Rule: rules.FixedDate{Month: time.December, Day: 25}},
}

// New returns the Spanish rule tables.
func New() *jurisdiction.Table {
	t := jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.Spain,
		ISO3:    "ESP",
		Name:    "Spain",
	}, national, communities)

	t.Observe(rules.Entry{Name: "Maundy Thursday", Rule: rules.EasterOffset{Days: -3}},
		Andalusia, Aragon, Asturias, BalearicIslands, CanaryIslands, Cantabria, CastileAndLeon, CastileLaMancha,
		Extremadura, Galicia, Madrid, Murcia, Navarre, BasqueCountry, LaRioja, Ceuta, Melilla)
	t.Observe(rules.Entry{Name: "Easter Monday", Rule: rules.EasterOffset{Days: 1}},
		BalearicIslands, Catalonia, Navarre, BasqueCountry, ValencianCommunity)

	t.Observe(rules.Entry{Name: "Andalusia Day", Rule: rules.FixedDate{Month: time.February, Day: 28}, From: 1981},
		Andalusia)
	t.Observe(rules.Entry{Name: "Balearic Islands Day", Rule: rules.FixedDate{Month: time.March, Day: 1}, From: 1983},
		BalearicIslands)
	t.Observe(rules.Entry{Name: "St. Joseph's Day", Rule: rules.FixedDate{Month: time.March, Day: 19}},
		ValencianCommunity)
	t.Observe(rules.Entry{Name: "St. George's Day", Rule: rules.FixedDate{Month: time.April, Day: 23}},
		Aragon)
	t.Observe(rules.Entry{Name: "Castile and León Day", Rule: rules.FixedDate{Month: time.April, Day: 23}, From: 1986},
		CastileAndLeon)
	t.Observe(rules.Entry{Name: "Community of Madrid Day", Rule: rules.FixedDate{Month: time.May, Day: 2}, From: 1983},
		Madrid)
	t.Observe(rules.Entry{Name: "Galician Literature Day", Rule: rules.FixedDate{Month: time.May, Day: 17}, From: 1991},
		Galicia)
	t.Observe(rules.Entry{Name: "Canary Islands Day", Rule: rules.FixedDate{Month: time.May, Day: 30}, From: 1984},
		CanaryIslands)
	t.Observe(rules.Entry{Name: "Castilla-La Mancha Day", Rule: rules.FixedDate{Month: time.May, Day: 31}, From: 1984},
		CastileLaMancha)
	t.Observe(rules.Entry{Name: "Region of Murcia Day", Rule: rules.FixedDate{Month: time.June, Day: 9}, From: 1983},
		Murcia)
	t.Observe(rules.Entry{Name: "La Rioja Day", Rule: rules.FixedDate{Month: time.June, Day: 9}, From: 1983},
		LaRioja)
	t.Observe(rules.Entry{Name: "St. John's Day", Rule: rules.FixedDate{Month: time.June, Day: 24}},
		Catalonia)
	t.Observe(rules.Entry{Name: "Galician National Day", Rule: rules.FixedDate{Month: time.July, Day: 25}},
		Galicia)
	t.Observe(rules.Entry{Name: "Day of Ceuta", Rule: rules.FixedDate{Month: time.September, Day: 2}, From: 1995},
		Ceuta)
	t.Observe(rules.Entry{Name: "Asturias Day", Rule: rules.FixedDate{Month: time.September, Day: 8}, From: 1984},
		Asturias)
	t.Observe(rules.Entry{Name: "Extremadura Day", Rule: rules.FixedDate{Month: time.September, Day: 8}, From: 1985},
		Extremadura)
	t.Observe(rules.Entry{Name: "National Day of Catalonia", Rule: rules.FixedDate{Month: time.September, Day: 11}, From: 1980},
		Catalonia)
	t.Observe(rules.Entry{Name: "Day of Cantabria", Rule: rules.FixedDate{Month: time.September, Day: 15}},
		Cantabria)
	t.Observe(rules.Entry{Name: "Day of Melilla", Rule: rules.FixedDate{Month: time.September, Day: 17}, From: 1995},
		Melilla)
	t.Observe(rules.Entry{Name: "Valencian Community Day", Rule: rules.FixedDate{Month: time.October, Day: 9}, From: 1983},
		ValencianCommunity)
	t.Observe(rules.Entry{Name: "St. Francis Xavier's Day", Rule: rules.FixedDate{Month: time.December, Day: 3}},
		Navarre)
	t.Observe(rules.Entry{Name: "St. Stephen's Day", Rule: rules.FixedDate{Month: time.December, Day: 26}},
		Catalonia)

	return t
}
