package es

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/jurisdiction"
)

func TestTable(t *testing.T) {
	table := New()

	assert.Equal(t, "ESP", table.Info().ISO3)
	assert.Len(t, table.Subdivisions(), 19)
	assert.Empty(t, table.RegionalSubdivisions())
	require.NoError(t, table.National().Validate())
}

func TestHolyWeek(t *testing.T) {
	names := func(sub jurisdiction.Subdivision) map[string]string {
		hs, err := jurisdiction.SubdivisionModel(New(), sub).AllHolidays(2024)
		require.NoError(t, err)
		out := make(map[string]string, len(hs))
		for _, h := range hs {
			out[h.Name] = h.Date.String()
		}
		return out
	}

	madrid := names(Madrid)
	assert.Equal(t, "2024-03-28", madrid["Maundy Thursday"])
	assert.Equal(t, "2024-03-29", madrid["Good Friday"])
	assert.NotContains(t, madrid, "Easter Monday")

	catalonia := names(Catalonia)
	assert.NotContains(t, catalonia, "Maundy Thursday")
	assert.Equal(t, "2024-04-01", catalonia["Easter Monday"])
	assert.Equal(t, "2024-09-11", catalonia["National Day of Catalonia"])
	assert.Equal(t, "2024-12-26", catalonia["St. Stephen's Day"])
}
