package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/calendar"
	"almanac/internal/jurisdiction"
	"almanac/internal/jurisdiction/providers/de"
	"almanac/internal/jurisdiction/providers/dk"
	"almanac/internal/rules"
	"almanac/pkg/platform/sentinel"
)

func TestResolve(t *testing.T) {
	r := Default()

	tests := []struct {
		name       string
		identifier string
		want       jurisdiction.Country
		ok         bool
	}{
		{"alpha-2", "DE", jurisdiction.Germany, true},
		{"lower case", "de", jurisdiction.Germany, true},
		{"alpha-3", "DEU", jurisdiction.Germany, true},
		{"mixed case alpha-3", "uSa", jurisdiction.UnitedStates, true},
		{"switzerland", "CHE", jurisdiction.Switzerland, true},
		{"unknown", "ZZ", "", false},
		{"too short", "A", "", false},
		{"empty", "", "", false},
		{"too long", "GERM", "", false},
		{"not in catalog", "GB", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.identifier)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEquivalence(t *testing.T) {
	r := Default()

	a, okA := r.Resolve("DE")
	b, okB := r.Resolve("de")
	c, okC := r.Resolve("DEU")
	require.True(t, okA && okB && okC)
	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestParse(t *testing.T) {
	r := Default()

	tests := []struct {
		identifier string
		want       jurisdiction.Jurisdiction
		ok         bool
	}{
		{"DE", jurisdiction.Germany, true},
		{"deu", jurisdiction.Germany, true},
		{"DE-BY", jurisdiction.Qualified{Country: jurisdiction.Germany, Subdivision: de.Bavaria}, true},
		{"deu-by", jurisdiction.Qualified{Country: jurisdiction.Germany, Subdivision: de.Bavaria}, true},
		{"us-ca", jurisdiction.Qualified{Country: jurisdiction.UnitedStates, Subdivision: "US-CA"}, true},
		{" FR-2A ", jurisdiction.Qualified{Country: jurisdiction.France, Subdivision: "FR-2A"}, true},
		{"DE-XX", nil, false},
		{"DE-", nil, false},
		{"DK-84", nil, false},
		{"ZZ-BY", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			got, ok := r.Parse(tt.identifier)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog(t *testing.T) {
	r := Default()

	assert.Equal(t, []jurisdiction.Country{
		jurisdiction.Austria,
		jurisdiction.Denmark,
		jurisdiction.France,
		jurisdiction.Germany,
		jurisdiction.Luxembourg,
		jurisdiction.Spain,
		jurisdiction.Switzerland,
		jurisdiction.UnitedStates,
	}, r.Countries())

	counts := map[jurisdiction.Country]int{
		jurisdiction.Austria:      9,
		jurisdiction.Denmark:      0,
		jurisdiction.France:       101,
		jurisdiction.Germany:      16,
		jurisdiction.Luxembourg:   0,
		jurisdiction.Spain:        19,
		jurisdiction.Switzerland:  26,
		jurisdiction.UnitedStates: 50,
	}
	total := 0
	for c, n := range counts {
		assert.Len(t, r.Subdivisions(c), n, c)
		assert.Len(t, r.SubdivisionInfos(c), n, c)
		total += n
	}
	assert.Empty(t, r.Subdivisions("ZZ"))

	all := r.AllQualified()
	require.Len(t, all, total)
	assert.Equal(t, jurisdiction.Qualified{Country: jurisdiction.Austria, Subdivision: "AT-1"}, all[0])
	assert.Equal(t, jurisdiction.Qualified{Country: jurisdiction.UnitedStates, Subdivision: "US-WY"}, all[len(all)-1])

	info, ok := r.Info(jurisdiction.Luxembourg)
	require.True(t, ok)
	assert.Equal(t, "LUX", info.ISO3)
	_, ok = r.Info("ZZ")
	assert.False(t, ok)
}

func TestModel(t *testing.T) {
	r := Default()

	t.Run("country", func(t *testing.T) {
		m, err := r.Model(jurisdiction.Germany)
		require.NoError(t, err)
		hs, err := m.AllHolidays(2024)
		require.NoError(t, err)
		assert.Len(t, hs, 9)
	})

	t.Run("qualified without subdivision matches the country", func(t *testing.T) {
		bare, err := r.Model(jurisdiction.Germany)
		require.NoError(t, err)
		qualified, err := r.Model(jurisdiction.Qualified{Country: jurisdiction.Germany})
		require.NoError(t, err)

		want, err := bare.AllHolidays(2024)
		require.NoError(t, err)
		got, err := qualified.AllHolidays(2024)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("subdivision", func(t *testing.T) {
		m, err := r.Model(jurisdiction.Qualified{Country: jurisdiction.Germany, Subdivision: de.Bavaria})
		require.NoError(t, err)
		hs, err := m.AllHolidays(2024)
		require.NoError(t, err)
		assert.Len(t, hs, 12)
	})

	unresolved := []jurisdiction.Jurisdiction{
		jurisdiction.Country("ZZ"),
		jurisdiction.Qualified{Country: "ZZ", Subdivision: "ZZ-01"},
		jurisdiction.Qualified{Country: jurisdiction.Germany, Subdivision: "DE-XX"},
		jurisdiction.Qualified{Country: jurisdiction.Germany, Subdivision: "US-CA"},
		jurisdiction.Qualified{Country: jurisdiction.Denmark, Subdivision: "DK-84"},
		nil,
	}
	for _, j := range unresolved {
		_, err := r.Model(j)
		assert.ErrorIs(t, err, ErrUnresolvedIdentifier, "%v", j)
		assert.ErrorIs(t, err, sentinel.ErrNotFound, "%v", j)
	}
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestNew(t *testing.T) {
	t.Run("duplicate country", func(t *testing.T) {
		_, err := New(de.New(), dk.New(), de.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DE already registered")
	})

	t.Run("duplicate iso3", func(t *testing.T) {
		clash := jurisdiction.NewTable(jurisdiction.CountryInfo{Country: "XD", ISO3: "DEU", Name: "Clash"}, nil, nil)
		_, err := New(de.New(), clash)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ISO3 code DEU")
	})

	t.Run("invalid rule", func(t *testing.T) {
		broken := jurisdiction.NewTable(jurisdiction.CountryInfo{Country: "XB", ISO3: "XBR", Name: "Broken"},
			rules.Set{{Name: "Fifth Sunday", Rule: rules.NthWeekday{Month: time.May, Weekday: time.Sunday, N: 0}}}, nil)
		_, err := New(broken)
		require.Error(t, err)

		var ie *calendar.InvalidRuleError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "Fifth Sunday", ie.Rule)
	})

	t.Run("invalid regional rule", func(t *testing.T) {
		broken := jurisdiction.NewTable(jurisdiction.CountryInfo{Country: "XB", ISO3: "XBR", Name: "Broken"},
			nil, []jurisdiction.SubdivisionInfo{{Code: "XB-01", Name: "One"}})
		broken.Observe(rules.Entry{Name: "31 April", Rule: rules.FixedDate{Month: time.April, Day: 31}}, "XB-01")
		_, err := New(broken)
		assert.True(t, calendar.IsInvalidRule(err))
	})

	t.Run("foreign subdivision", func(t *testing.T) {
		bad := jurisdiction.NewTable(jurisdiction.CountryInfo{Country: "XB", ISO3: "XBR", Name: "Bad"},
			nil, []jurisdiction.SubdivisionInfo{{Code: "DE-BY", Name: "Bavaria"}})
		_, err := New(bad)
		assert.Error(t, err)
	})

	t.Run("malformed codes", func(t *testing.T) {
		bad := jurisdiction.NewTable(jurisdiction.CountryInfo{Country: "XBR", ISO3: "XB", Name: "Bad"}, nil, nil)
		_, err := New(bad)
		assert.Error(t, err)
	})

	t.Run("custom catalog", func(t *testing.T) {
		r, err := New(dk.New())
		require.NoError(t, err)
		_, ok := r.Resolve("DE")
		assert.False(t, ok)
		c, ok := r.Resolve("dnk")
		assert.True(t, ok)
		assert.Equal(t, jurisdiction.Denmark, c)
	})
}
