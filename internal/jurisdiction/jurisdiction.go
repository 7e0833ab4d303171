// Package jurisdiction models "where" a holiday calendar applies: a bare country
// or a country refined by one of its subdivisions.
//
// Jurisdiction is a sealed sum type with exactly two shapes, Country and
// Qualified. Consumers switch over both:
//
//	switch j := j.(type) {
//	case jurisdiction.Country:
//	case jurisdiction.Qualified:
//	}
package jurisdiction

import "strings"

// Jurisdiction is either a Country or a Qualified country/subdivision pair.
type Jurisdiction interface {
	// CountryCode returns the ISO 3166-1 alpha-2 code of the country.
	CountryCode() Country
	// ID is the identifier holidays computed for this jurisdiction are tagged with.
	ID() string

	isJurisdiction()
}

// Country is an ISO 3166-1 alpha-2 country code in upper case.
type Country string

// Built-in countries, in catalog order.
const (
	Austria      Country = "AT"
	Denmark      Country = "DK"
	France       Country = "FR"
	Germany      Country = "DE"
	Luxembourg   Country = "LU"
	Spain        Country = "ES"
	Switzerland  Country = "CH"
	UnitedStates Country = "US"
)

func (c Country) CountryCode() Country { return c }
func (c Country) ID() string           { return string(c) }
func (c Country) String() string       { return string(c) }
func (Country) isJurisdiction()        {}

// Subdivision is an ISO 3166-2 subdivision code such as "DE-BY". The zero value
// means "no subdivision".
type Subdivision string

// None is the explicit "no subdivision" selector.
const None Subdivision = ""

func (s Subdivision) IsNone() bool { return s == None }

func (s Subdivision) String() string { return string(s) }

// Country returns the country prefix of the code.
func (s Subdivision) Country() Country {
	c, _, _ := strings.Cut(string(s), "-")
	return Country(c)
}

// Qualified pairs a country with an optional subdivision. Qualified{C, None}
// computes the same holidays as the bare Country C but is a distinct value.
type Qualified struct {
	Country     Country
	Subdivision Subdivision
}

func (q Qualified) CountryCode() Country { return q.Country }

func (q Qualified) ID() string {
	if q.Subdivision.IsNone() {
		return string(q.Country)
	}
	return string(q.Subdivision)
}

func (q Qualified) String() string { return q.ID() }

func (Qualified) isJurisdiction() {}

// CountryInfo describes a country in the catalog.
type CountryInfo struct {
	Country Country `json:"iso2"`
	ISO3    string  `json:"iso3"`
	Name    string  `json:"name"`
}

// SubdivisionInfo describes one member of a country's subdivision enumeration.
type SubdivisionInfo struct {
	Code Subdivision `json:"code"`
	Name string      `json:"name"`
}
