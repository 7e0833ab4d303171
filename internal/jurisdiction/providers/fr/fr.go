// Package fr holds the French public holiday tables. Subdivisions are the 101
// departments, metropolitan and overseas.
package fr

import (
	"time"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

// Departments with regional rules.
const (
	Moselle    jurisdiction.Subdivision = "FR-57"
	BasRhin    jurisdiction.Subdivision = "FR-67"
	HautRhin   jurisdiction.Subdivision = "FR-68"
	Guadeloupe jurisdiction.Subdivision = "FR-971"
	Martinique jurisdiction.Subdivision = "FR-972"
	Guiana     jurisdiction.Subdivision = "FR-973"
	Reunion    jurisdiction.Subdivision = "FR-974"
	Mayotte    jurisdiction.Subdivision = "FR-976"
)

var departments = []jurisdiction.SubdivisionInfo{
	{Code: "FR-01", Name: "Ain"},
	{Code: "FR-02", Name: "Aisne"},
	{Code: "FR-03", Name: "Allier"},
	{Code: "FR-04", Name: "Alpes-de-Haute-Provence"},
	{Code: "FR-05", Name: "Hautes-Alpes"},
	{Code: "FR-06", Name: "Alpes-Maritimes"},
	{Code: "FR-07", Name: "Ardèche"},
	{Code: "FR-08", Name: "Ardennes"},
	{Code: "FR-09", Name: "Ariège"},
	{Code: "FR-10", Name: "Aube"},
	{Code: "FR-11", Name: "Aude"},
	{Code: "FR-12", Name: "Aveyron"},
	{Code: "FR-13", Name: "Bouches-du-Rhône"},
	{Code: "FR-14", Name: "Calvados"},
	{Code: "FR-15", Name: "Cantal"},
	{Code: "FR-16", Name: "Charente"},
	{Code: "FR-17", Name: "Charente-Maritime"},
	{Code: "FR-18", Name: "Cher"},
	{Code: "FR-19", Name: "Corrèze"},
	{Code: "FR-2A", Name: "Corse-du-Sud"},
	{Code: "FR-2B", Name: "Haute-Corse"},
	{Code: "FR-21", Name: "Côte-d'Or"},
	{Code: "FR-22", Name: "Côtes-d'Armor"},
	{Code: "FR-23", Name: "Creuse"},
	{Code: "FR-24", Name: "Dordogne"},
	{Code: "FR-25", Name: "Doubs"},
	{Code: "FR-26", Name: "Drôme"},
	{Code: "FR-27", Name: "Eure"},
	{Code: "FR-28", Name: "Eure-et-Loir"},
	{Code: "FR-29", Name: "Finistère"},
	{Code: "FR-30", Name: "Gard"},
	{Code: "FR-31", Name: "Haute-Garonne"},
	{Code: "FR-32", Name: "Gers"},
	{Code: "FR-33", Name: "Gironde"},
	{Code: "FR-34", Name: "Hérault"},
	{Code: "FR-35", Name: "Ille-et-Vilaine"},
	{Code: "FR-36", Name: "Indre"},
	{Code: "FR-37", Name: "Indre-et-Loire"},
	{Code: "FR-38", Name: "Isère"},
	{Code: "FR-39", Name: "Jura"},
	{Code: "FR-40", Name: "Landes"},
	{Code: "FR-41", Name: "Loir-et-Cher"},
	{Code: "FR-42", Name: "Loire"},
	{Code: "FR-43", Name: "Haute-Loire"},
	{Code: "FR-44", Name: "Loire-Atlantique"},
	{Code: "FR-45", Name: "Loiret"},
	{Code: "FR-46", Name: "Lot"},
	{Code: "FR-47", Name: "Lot-et-Garonne"},
	{Code: "FR-48", Name: "Lozère"},
	{Code: "FR-49", Name: "Maine-et-Loire"},
	{Code: "FR-50", Name: "Manche"},
	{Code: "FR-51", Name: "Marne"},
	{Code: "FR-52", Name: "Haute-Marne"},
	{Code: "FR-53", Name: "Mayenne"},
	{Code: "FR-54", Name: "Meurthe-et-Moselle"},
	{Code: "FR-55", Name: "Meuse"},
	{Code: "FR-56", Name: "Morbihan"},
	{Code: Moselle, Name: "Moselle"},
	{Code: "FR-58", Name: "Nièvre"},
	{Code: "FR-59", Name: "Nord"},
	{Code: "FR-60", Name: "Oise"},
	{Code: "FR-61", Name: "Orne"},
	{Code: "FR-62", Name: "Pas-de-Calais"},
	{Code: "FR-63", Name: "Puy-de-Dôme"},
	{Code: "FR-64", Name: "Pyrénées-Atlantiques"},
	{Code: "FR-65", Name: "Hautes-Pyrénées"},
	{Code: "FR-66", Name: "Pyrénées-Orientales"},
	{Code: BasRhin, Name: "Bas-Rhin"},
	{Code: HautRhin, Name: "Haut-Rhin"},
	{Code: "FR-69", Name: "Rhône"},
	{Code: "FR-70", Name: "Haute-Saône"},
	{Code: "FR-71", Name: "Saône-et-Loire"},
	{Code: "FR-72", Name: "Sarthe"},
	{Code: "FR-73", Name: "Savoie"},
	{Code: "FR-74", Name: "Haute-Savoie"},
	{Code: "FR-75", Name: "Paris"},
	{Code: "FR-76", Name: "Seine-Maritime"},
	{Code: "FR-77", Name: "Seine-et-Marne"},
	{Code: "FR-78", Name: "Yvelines"},
	{Code: "FR-79", Name: "Deux-Sèvres"},
	{Code: "FR-80", Name: "Somme"},
	{Code: "FR-81", Name: "Tarn"},
	{Code: "FR-82", Name: "Tarn-et-Garonne"},
	{Code: "FR-83", Name: "Var"},
	{Code: "FR-84", Name: "Vaucluse"},
	{Code: "FR-85", Name: "Vendée"},
	{Code: "FR-86", Name: "Vienne"},
	{Code: "FR-87", Name: "Haute-Vienne"},
	{Code: "FR-88", Name: "Vosges"},
	{Code: "FR-89", Name: "Yonne"},
	{Code: "FR-90", Name: "Territoire de Belfort"},
	{Code: "FR-91", Name: "Essonne"},
	{Code: "FR-92", Name: "Hauts-de-Seine"},
	{Code: "FR-93", Name: "Seine-Saint-Denis"},
	{Code: "FR-94", Name: "Val-de-Marne"},
	{Code: "FR-95", Name: "Val-d'Oise"},
	{Code: Guadeloupe, Name: "Guadeloupe"},
	{Code: Martinique, Name: "Martinique"},
	{Code: Guiana, Name: "French Guiana"},
	{Code: Reunion, Name: "La Réunion"},
	{Code: Mayotte, Name: "Mayotte"},
}

var national = rules.Set{
	{Name: "New Year's Day", Rule: rules.FixedDate{Month: time.January, Day: 1}},
	{Name: "Easter Monday", Rule: rules.EasterOffset{Days: 1}},
	{Name: "Labour Day", Rule: rules.FixedDate{Month: time.May, Day: 1}},
	{Name: "Victory in Europe Day", Rule: rules.FixedDate{Month: time.May, Day: 8}, From: 1982},
	{Name: "Ascension Day", Rule: rules.EasterOffset{Days: 39}},
	// Journée de solidarité turned Whit Monday into a working day for 2005 to 2007.
	{Name: "Whit Monday", Rule: rules.EasterOffset{Days: 50}, To: 2004},
	{Name: "Whit Monday", Rule: rules.EasterOffset{Days: 50}, From: 2008},
	{Name: "Bastille Day", Rule: rules.FixedDate{Month: time.July, Day: 14}, From: 1880},
	{Name: "Assumption Day", Rule: rules.FixedDate{Month: time.August, Day: 15}},
	{Name: "All Saints' Day", Rule: rules.FixedDate{Month: time.November, Day: 1}},
	{Name: "Armistice Day", Rule: rules.FixedDate{Month: time.November, Day: 11}, From: 1922},
	{Name: "Christmas Day", Rule: rules.FixedDate{Month: time.December, Day: 25}},
}

// New returns the French rule tables.
func New() *jurisdiction.Table {
	t := jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.France,
		ISO3:    "FRA",
		Name:    "France",
	}, national, departments)

	// Alsace-Moselle local law.
	t.Observe(rules.Entry{Name: "Good Friday", Rule: rules.EasterOffset{Days: -2}},
		Moselle, BasRhin, HautRhin)
	t.Observe(rules.Entry{Name: "St. Stephen's Day", Rule: rules.FixedDate{Month: time.December, Day: 26}},
		Moselle, BasRhin, HautRhin)

	t.Observe(rules.Entry{Name: "Abolition of Slavery", Rule: rules.FixedDate{Month: time.April, Day: 27}, From: 1983},
		Mayotte)
	t.Observe(rules.Entry{Name: "Abolition of Slavery", Rule: rules.FixedDate{Month: time.May, Day: 22}, From: 1983},
		Martinique)
	t.Observe(rules.Entry{Name: "Abolition of Slavery", Rule: rules.FixedDate{Month: time.May, Day: 27}, From: 1983},
		Guadeloupe)
	t.Observe(rules.Entry{Name: "Abolition of Slavery", Rule: rules.FixedDate{Month: time.June, Day: 10}, From: 1983},
		Guiana)
	t.Observe(rules.Entry{Name: "Abolition of Slavery", Rule: rules.FixedDate{Month: time.December, Day: 20}, From: 1983},
		Reunion)

	return t
}
