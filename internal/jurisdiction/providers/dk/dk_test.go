package dk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/jurisdiction"
)

func TestTable(t *testing.T) {
	table := New()

	assert.Equal(t, jurisdiction.Denmark, table.Info().Country)
	assert.Empty(t, table.Subdivisions())
	require.NoError(t, table.National().Validate())
}

func TestGeneralPrayerDay(t *testing.T) {
	names := func(year int) []string {
		hs, err := jurisdiction.NationalModel(New()).AllHolidays(year)
		require.NoError(t, err)
		out := make([]string, 0, len(hs))
		for _, h := range hs {
			out = append(out, h.Name)
		}
		return out
	}

	assert.Contains(t, names(2023), "General Prayer Day")
	assert.NotContains(t, names(2024), "General Prayer Day")
	assert.Len(t, names(2024), 11)
}
