package de

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/domain"
	"almanac/internal/jurisdiction"
)

func dated(hs []domain.Holiday) map[string]string {
	out := make(map[string]string, len(hs))
	for _, h := range hs {
		out[h.Name] = h.Date.String()
	}
	return out
}

func TestTable(t *testing.T) {
	table := New()

	assert.Equal(t, jurisdiction.Germany, table.Info().Country)
	assert.Equal(t, "DEU", table.Info().ISO3)
	assert.Len(t, table.Subdivisions(), 16)
	assert.Empty(t, table.RegionalSubdivisions())

	require.NoError(t, table.National().Validate())
	for _, s := range table.Subdivisions() {
		require.NoError(t, table.Regional(s.Code).Validate(), s.Code)
		assert.Equal(t, jurisdiction.Germany, s.Code.Country())
	}
}

func TestNational2024(t *testing.T) {
	hs, err := jurisdiction.NationalModel(New()).AllHolidays(2024)
	require.NoError(t, err)

	got := dated(hs)
	assert.Len(t, got, 9)
	assert.Equal(t, "2024-03-29", got["Good Friday"])
	assert.Equal(t, "2024-04-01", got["Easter Monday"])
	assert.Equal(t, "2024-05-09", got["Ascension Day"])
	assert.Equal(t, "2024-05-20", got["Whit Monday"])
	assert.Equal(t, "2024-10-03", got["German Unity Day"])
	assert.NotContains(t, got, "Reformation Day")

	for _, h := range hs {
		assert.Equal(t, "DE", h.Jurisdiction)
	}
}

func TestReformationDay(t *testing.T) {
	hs, err := jurisdiction.NationalModel(New()).AllHolidays(2017)
	require.NoError(t, err)
	assert.Equal(t, "2017-10-31", dated(hs)["Reformation Day"])

	hs, err = jurisdiction.SubdivisionModel(New(), Hamburg).AllHolidays(2017)
	require.NoError(t, err)
	assert.Len(t, hs, 10)

	hs, err = jurisdiction.SubdivisionModel(New(), Hamburg).AllHolidays(2018)
	require.NoError(t, err)
	assert.Equal(t, "2018-10-31", dated(hs)["Reformation Day"])
}

func TestRegional(t *testing.T) {
	tests := []struct {
		name string
		sub  jurisdiction.Subdivision
		year int
		want map[string]string
		not  []string
	}{
		{
			name: "bavaria",
			sub:  Bavaria,
			year: 2024,
			want: map[string]string{"Epiphany": "2024-01-06", "Corpus Christi": "2024-05-30", "All Saints' Day": "2024-11-01"},
			not:  []string{"Reformation Day", "Repentance and Prayer Day"},
		},
		{
			name: "saxony",
			sub:  Saxony,
			year: 2024,
			want: map[string]string{"Reformation Day": "2024-10-31", "Repentance and Prayer Day": "2024-11-20"},
			not:  []string{"Corpus Christi"},
		},
		{
			name: "saxony anchor on wednesday",
			sub:  Saxony,
			year: 2022,
			want: map[string]string{"Repentance and Prayer Day": "2022-11-16"},
		},
		{
			name: "berlin",
			sub:  Berlin,
			year: 2025,
			want: map[string]string{"International Women's Day": "2025-03-08", "Liberation Day": "2025-05-08"},
		},
		{
			name: "berlin before women's day",
			sub:  Berlin,
			year: 2018,
			not:  []string{"International Women's Day", "Liberation Day"},
		},
		{
			name: "brandenburg",
			sub:  Brandenburg,
			year: 2024,
			want: map[string]string{"Easter Sunday": "2024-03-31", "Whit Sunday": "2024-05-19"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs, err := jurisdiction.SubdivisionModel(New(), tt.sub).AllHolidays(tt.year)
			require.NoError(t, err)
			got := dated(hs)
			for name, date := range tt.want {
				assert.Equal(t, date, got[name], name)
			}
			for _, name := range tt.not {
				assert.NotContains(t, got, name)
			}
		})
	}
}
