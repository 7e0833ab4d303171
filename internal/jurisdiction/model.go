package jurisdiction

import (
	"almanac/internal/domain"
	"almanac/internal/rules"
)

// Provider supplies the rule tables of one country. Implementations are
// immutable: every call returns the same data.
type Provider interface {
	Info() CountryInfo
	// National is the rule set observed in the whole country.
	National() rules.Set
	// Subdivisions is the complete, ordered enumeration; empty for countries
	// without meaningful subdivisions.
	Subdivisions() []SubdivisionInfo
	// Regional is the rule set specific to sub, on top of National. Unknown or
	// rule-less subdivisions return an empty set.
	Regional(sub Subdivision) rules.Set
}

// Model produces all holidays of one jurisdiction for a year, unsorted and
// possibly with duplicates; aggregation happens in the caller.
type Model interface {
	AllHolidays(year int) ([]domain.Holiday, error)
}

// NationalModel evaluates only the national rule set. It backs bare countries
// and Qualified values without a subdivision: callers that do not pick a
// subdivision get the holidays common to the whole country and nothing more.
func NationalModel(p Provider) Model {
	return nationalModel{provider: p}
}

// SubdivisionModel evaluates the national rule set followed by the rule set of sub.
func SubdivisionModel(p Provider, sub Subdivision) Model {
	return subdivisionModel{provider: p, subdivision: sub}
}

type nationalModel struct {
	provider Provider
}

func (m nationalModel) AllHolidays(year int) ([]domain.Holiday, error) {
	return m.provider.National().Evaluate(year, m.provider.Info().Country.ID())
}

type subdivisionModel struct {
	provider    Provider
	subdivision Subdivision
}

func (m subdivisionModel) AllHolidays(year int) ([]domain.Holiday, error) {
	national, err := m.provider.National().Evaluate(year, m.provider.Info().Country.ID())
	if err != nil {
		return nil, err
	}
	regional, err := m.provider.Regional(m.subdivision).Evaluate(year, m.subdivision.String())
	if err != nil {
		return nil, err
	}
	return append(national, regional...), nil
}
