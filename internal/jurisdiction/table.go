package jurisdiction

import (
	"almanac/internal/rules"
)

// Table is a Provider backed by in-memory rule tables. Build it once with
// NewTable and Observe, then treat it as read-only.
type Table struct {
	info         CountryInfo
	national     rules.Set
	subdivisions []SubdivisionInfo
	regional     map[Subdivision]rules.Set
}

var _ Provider = (*Table)(nil)

// NewTable starts a table for a country with its national rule set and its
// subdivision enumeration (nil when the country has none).
func NewTable(info CountryInfo, national rules.Set, subdivisions []SubdivisionInfo) *Table {
	return &Table{
		info:         info,
		national:     national,
		subdivisions: subdivisions,
		regional:     make(map[Subdivision]rules.Set, len(subdivisions)),
	}
}

// Observe appends entry to the regional rule set of every subdivision in subs.
// It returns the table so regional tables read as one expression.
func (t *Table) Observe(entry rules.Entry, subs ...Subdivision) *Table {
	for _, s := range subs {
		t.regional[s] = append(t.regional[s], entry)
	}
	return t
}

func (t *Table) Info() CountryInfo { return t.info }

func (t *Table) National() rules.Set { return t.national }

func (t *Table) Subdivisions() []SubdivisionInfo {
	out := make([]SubdivisionInfo, len(t.subdivisions))
	copy(out, t.subdivisions)
	return out
}

func (t *Table) Regional(sub Subdivision) rules.Set {
	return t.regional[sub]
}

// RegionalSubdivisions lists subdivisions that have regional rules but are not
// part of the enumeration. A well-formed table returns nothing.
func (t *Table) RegionalSubdivisions() []Subdivision {
	known := make(map[Subdivision]bool, len(t.subdivisions))
	for _, s := range t.subdivisions {
		known[s.Code] = true
	}
	var stray []Subdivision
	for s := range t.regional {
		if !known[s] {
			stray = append(stray, s)
		}
	}
	return stray
}
