// Package yamlrules loads jurisdiction providers from YAML rule files, so
// operators can add countries without rebuilding the server.
//
// A file describes one country:
//
//	country: XK
//	iso3: XKX
//	name: Kosovo
//	subdivisions:
//	  - code: XK-01
//	    name: Ferizaj
//	national:
//	  - name: New Year's Day
//	    rule: {kind: fixed, month: 1, day: 1}
//	  - name: Easter Monday
//	    rule: {kind: easter, days: 1}
//	    from: 2008
//	regional:
//	  - name: Municipality Day
//	    rule: {kind: nth_weekday, month: 6, weekday: monday, n: -1}
//	    subdivisions: [XK-01]
package yamlrules

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"almanac/internal/jurisdiction"
	"almanac/internal/rules"
)

type Loader struct {
	logger *slog.Logger
}

type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadDir loads every *.yaml and *.yml file of dir, in file name order.
func (l *Loader) LoadDir(dir string) ([]jurisdiction.Provider, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &OpError{
			Op:   "yamlrules.list",
			Kind: KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)

	providers := make([]jurisdiction.Provider, 0, len(paths))
	for _, p := range paths {
		t, err := l.LoadFile(p)
		if err != nil {
			return nil, err
		}
		providers = append(providers, t)
	}
	return providers, nil
}

// LoadFile parses and validates one country file.
func (l *Loader) LoadFile(path string) (*jurisdiction.Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{
			Op:   "yamlrules.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yc yamlCountry
	if err := yaml.Unmarshal(b, &yc); err != nil {
		return nil, &OpError{
			Op:   "yamlrules.load",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	t, err := mapAndValidate(path, yc)
	if err != nil {
		return nil, err
	}
	if l.logger != nil {
		l.logger.Info("loaded rule file",
			"path", path,
			"country", yc.Country,
			"subdivisions", len(yc.Subdivisions),
			"national_rules", len(yc.National),
			"regional_rules", len(yc.Regional),
		)
	}
	return t, nil
}

type yamlCountry struct {
	Country      string            `yaml:"country"`
	ISO3         string            `yaml:"iso3"`
	Name         string            `yaml:"name"`
	Subdivisions []yamlSubdivision `yaml:"subdivisions"`
	National     []yamlEntry       `yaml:"national"`
	Regional     []yamlEntry       `yaml:"regional"`
}

type yamlSubdivision struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type yamlEntry struct {
	Name         string    `yaml:"name"`
	Rule         *yamlRule `yaml:"rule"`
	From         int       `yaml:"from"`
	To           int       `yaml:"to"`
	Subdivisions []string  `yaml:"subdivisions"`
}

func mapAndValidate(path string, yc yamlCountry) (*jurisdiction.Table, error) {
	country := strings.ToUpper(strings.TrimSpace(yc.Country))
	iso3 := strings.ToUpper(strings.TrimSpace(yc.ISO3))
	if len(country) != 2 {
		return nil, invalidField(path, "country", fmt.Errorf("expected a 2-letter code, got %q", yc.Country))
	}
	if len(iso3) != 3 {
		return nil, invalidField(path, "iso3", fmt.Errorf("expected a 3-letter code, got %q", yc.ISO3))
	}
	if strings.TrimSpace(yc.Name) == "" {
		return nil, invalidField(path, "name", errors.New("country name is required"))
	}

	subs := make([]jurisdiction.SubdivisionInfo, 0, len(yc.Subdivisions))
	known := make(map[jurisdiction.Subdivision]bool, len(yc.Subdivisions))
	for i, s := range yc.Subdivisions {
		field := fmt.Sprintf("subdivisions[%d]", i)
		code := jurisdiction.Subdivision(strings.ToUpper(strings.TrimSpace(s.Code)))
		if string(code.Country()) != country {
			return nil, invalidField(path, field+".code", fmt.Errorf("%q is not a subdivision of %s", s.Code, country))
		}
		if known[code] {
			return nil, invalidField(path, field+".code", fmt.Errorf("%s listed twice", code))
		}
		known[code] = true
		subs = append(subs, jurisdiction.SubdivisionInfo{Code: code, Name: s.Name})
	}
	if len(subs) == 0 {
		subs = nil
	}

	national := make(rules.Set, 0, len(yc.National))
	for i, ye := range yc.National {
		field := fmt.Sprintf("national[%d]", i)
		if len(ye.Subdivisions) > 0 {
			return nil, invalidField(path, field+".subdivisions", errors.New("national rules apply to the whole country"))
		}
		e, err := mapEntry(ye)
		if err != nil {
			return nil, invalidField(path, field, err)
		}
		national = append(national, e)
	}

	t := jurisdiction.NewTable(jurisdiction.CountryInfo{
		Country: jurisdiction.Country(country),
		ISO3:    iso3,
		Name:    strings.TrimSpace(yc.Name),
	}, national, subs)

	for i, ye := range yc.Regional {
		field := fmt.Sprintf("regional[%d]", i)
		if len(ye.Subdivisions) == 0 {
			return nil, invalidField(path, field+".subdivisions", errors.New("regional rules need at least one subdivision"))
		}
		e, err := mapEntry(ye)
		if err != nil {
			return nil, invalidField(path, field, err)
		}
		codes := make([]jurisdiction.Subdivision, 0, len(ye.Subdivisions))
		for _, raw := range ye.Subdivisions {
			code := jurisdiction.Subdivision(strings.ToUpper(strings.TrimSpace(raw)))
			if !known[code] {
				return nil, invalidField(path, field+".subdivisions", fmt.Errorf("unknown subdivision %q", raw))
			}
			codes = append(codes, code)
		}
		t.Observe(e, codes...)
	}
	return t, nil
}

func mapEntry(ye yamlEntry) (rules.Entry, error) {
	if ye.Rule == nil {
		return rules.Entry{}, fmt.Errorf("%q has no rule", ye.Name)
	}
	r, err := ye.Rule.toRule()
	if err != nil {
		return rules.Entry{}, err
	}
	e := rules.Entry{Name: strings.TrimSpace(ye.Name), Rule: r, From: ye.From, To: ye.To}
	if err := e.Validate(); err != nil {
		return rules.Entry{}, err
	}
	return e, nil
}
