// Package registry is the catalog of known jurisdictions. It resolves textual
// identifiers to countries and subdivisions and dispatches a jurisdiction to
// the holiday model that serves it.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"almanac/internal/jurisdiction"
	"almanac/internal/jurisdiction/providers/at"
	"almanac/internal/jurisdiction/providers/ch"
	"almanac/internal/jurisdiction/providers/de"
	"almanac/internal/jurisdiction/providers/dk"
	"almanac/internal/jurisdiction/providers/es"
	"almanac/internal/jurisdiction/providers/fr"
	"almanac/internal/jurisdiction/providers/lu"
	"almanac/internal/jurisdiction/providers/us"
	"almanac/pkg/platform/sentinel"
)

// ErrUnresolvedIdentifier is returned when a jurisdiction names a country or
// subdivision the registry does not know. It wraps sentinel.ErrNotFound.
var ErrUnresolvedIdentifier = fmt.Errorf("unresolved jurisdiction identifier: %w", sentinel.ErrNotFound)

// Registry is immutable once built and safe for concurrent use.
type Registry struct {
	providers []jurisdiction.Provider
	byCountry map[jurisdiction.Country]jurisdiction.Provider
	subs      map[jurisdiction.Country]map[jurisdiction.Subdivision]bool
}

// Builtins returns the built-in providers in catalog order.
func Builtins() []jurisdiction.Provider {
	return []jurisdiction.Provider{
		at.New(),
		dk.New(),
		fr.New(),
		de.New(),
		lu.New(),
		es.New(),
		ch.New(),
		us.New(),
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := New(Builtins()...)
	if err != nil {
		panic(fmt.Sprintf("registry: built-in catalog is invalid: %v", err))
	}
	return r
})

// Default returns the registry of built-in providers. It is built on first use.
func Default() *Registry {
	return defaultRegistry()
}

// New builds a registry from providers, keeping their order. It fails on
// duplicate ISO codes, malformed subdivision enumerations and invalid rules.
func New(providers ...jurisdiction.Provider) (*Registry, error) {
	r := &Registry{
		providers: make([]jurisdiction.Provider, 0, len(providers)),
		byCountry: make(map[jurisdiction.Country]jurisdiction.Provider, len(providers)),
		subs:      make(map[jurisdiction.Country]map[jurisdiction.Subdivision]bool, len(providers)),
	}
	iso3 := make(map[string]jurisdiction.Country, len(providers))

	for _, p := range providers {
		info := p.Info()
		if len(info.Country) != 2 || len(info.ISO3) != 3 {
			return nil, fmt.Errorf("provider %q/%q: ISO codes must have 2 and 3 letters", info.Country, info.ISO3)
		}
		if _, exists := r.byCountry[info.Country]; exists {
			return nil, fmt.Errorf("country %s already registered", info.Country)
		}
		if other, exists := iso3[info.ISO3]; exists {
			return nil, fmt.Errorf("ISO3 code %s of %s already used by %s", info.ISO3, info.Country, other)
		}

		known := make(map[jurisdiction.Subdivision]bool)
		for _, s := range p.Subdivisions() {
			if s.Code.Country() != info.Country {
				return nil, fmt.Errorf("subdivision %s does not belong to %s", s.Code, info.Country)
			}
			if known[s.Code] {
				return nil, fmt.Errorf("subdivision %s listed twice", s.Code)
			}
			known[s.Code] = true
			if err := p.Regional(s.Code).Validate(); err != nil {
				return nil, fmt.Errorf("rules of %s: %w", s.Code, err)
			}
		}
		if err := p.National().Validate(); err != nil {
			return nil, fmt.Errorf("rules of %s: %w", info.Country, err)
		}

		r.providers = append(r.providers, p)
		r.byCountry[info.Country] = p
		r.subs[info.Country] = known
		iso3[info.ISO3] = info.Country
	}
	return r, nil
}

// Resolve maps an ISO 3166-1 alpha-2 or alpha-3 code, in any case, to a
// catalog country. Identifiers that are not 2 or 3 characters long are never
// matched.
func (r *Registry) Resolve(identifier string) (jurisdiction.Country, bool) {
	if n := len(identifier); n < 2 || n > 3 {
		return "", false
	}
	code := strings.ToUpper(identifier)
	for _, p := range r.providers {
		info := p.Info()
		if string(info.Country) == code || info.ISO3 == code {
			return info.Country, true
		}
	}
	return "", false
}

// Parse reads a structured identifier: "DE" or "DEU" yield the bare country,
// "DE-BY" or "deu-by" yield the qualified subdivision.
func (r *Registry) Parse(identifier string) (jurisdiction.Jurisdiction, bool) {
	country, sub, qualified := strings.Cut(strings.TrimSpace(identifier), "-")
	c, ok := r.Resolve(country)
	if !ok {
		return nil, false
	}
	if !qualified {
		return c, true
	}

	code := jurisdiction.Subdivision(string(c) + "-" + strings.ToUpper(sub))
	if !r.subs[c][code] {
		return nil, false
	}
	return jurisdiction.Qualified{Country: c, Subdivision: code}, true
}

// Countries lists the catalog in declaration order.
func (r *Registry) Countries() []jurisdiction.Country {
	out := make([]jurisdiction.Country, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p.Info().Country)
	}
	return out
}

func (r *Registry) Info(c jurisdiction.Country) (jurisdiction.CountryInfo, bool) {
	p, ok := r.byCountry[c]
	if !ok {
		return jurisdiction.CountryInfo{}, false
	}
	return p.Info(), true
}

// Subdivisions returns the ordered subdivision codes of c; empty for countries
// without subdivisions and for unknown countries.
func (r *Registry) Subdivisions(c jurisdiction.Country) []jurisdiction.Subdivision {
	infos := r.SubdivisionInfos(c)
	out := make([]jurisdiction.Subdivision, 0, len(infos))
	for _, s := range infos {
		out = append(out, s.Code)
	}
	return out
}

func (r *Registry) SubdivisionInfos(c jurisdiction.Country) []jurisdiction.SubdivisionInfo {
	p, ok := r.byCountry[c]
	if !ok {
		return nil
	}
	return p.Subdivisions()
}

// AllQualified flattens the catalog into every (country, subdivision) pair, in
// country order then subdivision order.
func (r *Registry) AllQualified() []jurisdiction.Qualified {
	var out []jurisdiction.Qualified
	for _, c := range r.Countries() {
		for _, s := range r.Subdivisions(c) {
			out = append(out, jurisdiction.Qualified{Country: c, Subdivision: s})
		}
	}
	return out
}

// Model returns the holiday model serving j.
func (r *Registry) Model(j jurisdiction.Jurisdiction) (jurisdiction.Model, error) {
	switch j := j.(type) {
	case jurisdiction.Country:
		p, ok := r.byCountry[j]
		if !ok {
			return nil, fmt.Errorf("%w: country %q", ErrUnresolvedIdentifier, j)
		}
		return jurisdiction.NationalModel(p), nil
	case jurisdiction.Qualified:
		p, ok := r.byCountry[j.Country]
		if !ok {
			return nil, fmt.Errorf("%w: country %q", ErrUnresolvedIdentifier, j.Country)
		}
		if j.Subdivision.IsNone() {
			return jurisdiction.NationalModel(p), nil
		}
		if !r.subs[j.Country][j.Subdivision] {
			return nil, fmt.Errorf("%w: subdivision %q of %s", ErrUnresolvedIdentifier, j.Subdivision, j.Country)
		}
		return jurisdiction.SubdivisionModel(p, j.Subdivision), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnresolvedIdentifier, j)
	}
}
