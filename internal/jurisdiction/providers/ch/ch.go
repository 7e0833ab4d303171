// Package ch holds the Swiss public holiday tables. The Confederation itself
// only mandates the National Day; everything else is cantonal law, so the
// national set is limited to days observed in every canton.
package ch

import (
	"time"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

const (
	Aargau                jurisdiction.Subdivision = "CH-AG"
	AppenzellInnerrhoden  jurisdiction.Subdivision = "CH-AI"
	AppenzellAusserrhoden jurisdiction.Subdivision = "CH-AR"
	Bern                  jurisdiction.Subdivision = "CH-BE"
	BaselLandschaft       jurisdiction.Subdivision = "CH-BL"
	BaselStadt            jurisdiction.Subdivision = "CH-BS"
	Fribourg              jurisdiction.Subdivision = "CH-FR"
	Geneva                jurisdiction.Subdivision = "CH-GE"
	Glarus                jurisdiction.Subdivision = "CH-GL"
	Graubuenden           jurisdiction.Subdivision = "CH-GR"
	Jura                  jurisdiction.Subdivision = "CH-JU"
	Lucerne               jurisdiction.Subdivision = "CH-LU"
	Neuchatel             jurisdiction.Subdivision = "CH-NE"
	Nidwalden             jurisdiction.Subdivision = "CH-NW"
	Obwalden              jurisdiction.Subdivision = "CH-OW"
	StGallen              jurisdiction.Subdivision = "CH-SG"
	Schaffhausen          jurisdiction.Subdivision = "CH-SH"
	Solothurn             jurisdiction.Subdivision = "CH-SO"
	Schwyz                jurisdiction.Subdivision = "CH-SZ"
	Thurgau               jurisdiction.Subdivision = "CH-TG"
	Ticino                jurisdiction.Subdivision = "CH-TI"
	Uri                   jurisdiction.Subdivision = "CH-UR"
	Vaud                  jurisdiction.Subdivision = "CH-VD"
	Valais                jurisdiction.Subdivision = "CH-VS"
	Zug                   jurisdiction.Subdivision = "CH-ZG"
	Zurich                jurisdiction.Subdivision = "CH-ZH"
)

var cantons = []jurisdiction.SubdivisionInfo{
	{Code: Aargau, Name: "Aargau"},
	{Code: AppenzellInnerrhoden, Name: "Appenzell Innerrhoden"},
	{Code: AppenzellAusserrhoden, Name: "Appenzell Ausserrhoden"},
	{Code: Bern, Name: "Bern"},
	{Code: BaselLandschaft, Name: "Basel-Landschaft"},
	{Code: BaselStadt, Name: "Basel-Stadt"},
	{Code: Fribourg, Name: "Fribourg"},
	{Code: Geneva, Name: "Geneva"},
	{Code: Glarus, Name: "Glarus"},
	{Code: Graubuenden, Name: "Graubünden"},
	{Code: Jura, Name: "Jura"},
	{Code: Lucerne, Name: "Lucerne"},
	{Code: Neuchatel, Name: "Neuchâtel"},
	{Code: Nidwalden, Name: "Nidwalden"},
	{Code: Obwalden, Name: "Obwalden"},
	{Code: StGallen, Name: "St. Gallen"},
	{Code: Schaffhausen, Name: "Schaffhausen"},
	{Code: Solothurn, Name: "Solothurn"},
	{Code: Schwyz, Name: "Schwyz"},
	{Code: Thurgau, Name: "Thurgau"},
	{Code: Ticino, Name: "Ticino"},
	{Code: Uri, Name: "Uri"},
	{Code: Vaud, Name: "Vaud"},
	{Code: Valais, Name: "Valais"},
	{Code: Zug, Name: "Zug"},
	{Code: Zurich, Name: "Zurich"},
}

var national = rules.Set{
	{Name: "New Year's Day", Rule: rules.FixedDate{Month: time.January, Day: 1}},
	{Name: "Ascension Day", Rule: rules.EasterOffset{Days: 39}},
	{Name: "Swiss National Day", Rule: rules.FixedDate{Month: time.August, Day: 1}, From: 1994},
	{Name: "Christmas Day", Rule: rules.FixedDate{Month: time.December, Day: 25}},
}

// except returns every canton not listed.
func except(excluded ...jurisdiction.Subdivision) []jurisdiction.Subdivision {
	skip := make(map[jurisdiction.Subdivision]bool, len(excluded))
	for _, s := range excluded {
		skip[s] = true
	}
	out := make([]jurisdiction.Subdivision, 0, len(cantons))
	for _, c := range cantons {
		if !skip[c.Code] {
			out = append(out, c.Code)
		}
	}
	return out
}

// New returns the Swiss rule tables.
func New() *jurisdiction.Table {
	t := jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.Switzerland,
		ISO3:    "CHE",
		Name:    "Switzerland",
	}, national, cantons)

	t.Observe(rules.Entry{Name: "Berchtold's Day", Rule: rules.FixedDate{Month: time.January, Day: 2}},
		Aargau, Bern, Fribourg, Glarus, Jura, Lucerne, Obwalden, Schaffhausen, Solothurn, Thurgau, Vaud, Zug, Zurich)
	t.Observe(rules.Entry{Name: "Epiphany", Rule: rules.FixedDate{Month: time.January, Day: 6}},
		Schwyz, Ticino, Uri)
	t.Observe(rules.Entry{Name: "Republic Day", Rule: rules.FixedDate{Month: time.March, Day: 1}},
		Neuchatel)
	t.Observe(rules.Entry{Name: "St. Joseph's Day", Rule: rules.FixedDate{Month: time.March, Day: 19}},
		Nidwalden, Schwyz, Ticino, Uri, Valais)
	t.Observe(rules.Entry{Name: "Good Friday", Rule: rules.EasterOffset{Days: -2}},
		except(Ticino, Valais)...)
	t.Observe(rules.Entry{Name: "Easter Monday", Rule: rules.EasterOffset{Days: 1}},
		except(Valais)...)
	t.Observe(rules.Entry{Name: "Näfels Procession", Rule: rules.NthWeekday{Month: time.April, Weekday: time.Thursday, N: 1}},
		Glarus)
	t.Observe(rules.Entry{Name: "Labour Day", Rule: rules.FixedDate{Month: time.May, Day: 1}},
		BaselLandschaft, BaselStadt, Jura, Neuchatel, Schaffhausen, Thurgau, Ticino, Zurich)
	t.Observe(rules.Entry{Name: "Whit Monday", Rule: rules.EasterOffset{Days: 50}},
		except(Valais)...)
	t.Observe(rules.Entry{Name: "Corpus Christi", Rule: rules.EasterOffset{Days: 60}},
		AppenzellInnerrhoden, Fribourg, Jura, Lucerne, Nidwalden, Obwalden, Solothurn, Schwyz, Ticino, Uri, Valais, Zug)
	t.Observe(rules.Entry{Name: "Independence Day", Rule: rules.FixedDate{Month: time.June, Day: 23}, From: 1975},
		Jura)
	t.Observe(rules.Entry{Name: "St. Peter and St. Paul", Rule: rules.FixedDate{Month: time.June, Day: 29}},
		Ticino)
	t.Observe(rules.Entry{Name: "Assumption Day", Rule: rules.FixedDate{Month: time.August, Day: 15}},
		AppenzellInnerrhoden, Fribourg, Jura, Lucerne, Nidwalden, Obwalden, Solothurn, Schwyz, Ticino, Uri, Valais, Zug)
	t.Observe(rules.Entry{Name: "Geneva Fast", Rule: rules.DayOffset{
		Base: rules.NthWeekday{Month: time.September, Weekday: time.Sunday, N: 1}, Days: 4,
	}},
		Geneva)
	t.Observe(rules.Entry{Name: "Federal Fast Monday", Rule: rules.DayOffset{
		Base: rules.NthWeekday{Month: time.September, Weekday: time.Sunday, N: 3}, Days: 1,
	}},
		Vaud)
	t.Observe(rules.Entry{Name: "St. Nicholas of Flüe", Rule: rules.FixedDate{Month: time.September, Day: 25}},
		Obwalden)
	t.Observe(rules.Entry{Name: "All Saints' Day", Rule: rules.FixedDate{Month: time.November, Day: 1}},
		AppenzellInnerrhoden, Fribourg, Glarus, Jura, Lucerne, Nidwalden, Obwalden, StGallen, Solothurn, Schwyz, Ticino, Uri, Valais, Zug)
	t.Observe(rules.Entry{Name: "Immaculate Conception", Rule: rules.FixedDate{Month: time.December, Day: 8}},
		AppenzellInnerrhoden, Fribourg, Lucerne, Nidwalden, Obwalden, Schwyz, Ticino, Uri, Valais, Zug)
	t.Observe(rules.Entry{Name: "St. Stephen's Day", Rule: rules.FixedDate{Month: time.December, Day: 26}},
		except(Geneva, Jura, Neuchatel, Solothurn, Vaud, Valais)...)
	t.Observe(rules.Entry{Name: "Restoration of the Republic", Rule: rules.FixedDate{Month: time.December, Day: 31}},
		Geneva)

	return t
}
