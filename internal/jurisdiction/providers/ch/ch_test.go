package ch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/jurisdiction"
)

func TestTable(t *testing.T) {
	table := New()

	assert.Equal(t, "CHE", table.Info().ISO3)
	assert.Len(t, table.Subdivisions(), 26)
	assert.Empty(t, table.RegionalSubdivisions())
	require.NoError(t, table.National().Validate())
	for _, s := range table.Subdivisions() {
		require.NoError(t, table.Regional(s.Code).Validate(), s.Code)
	}
}

func TestExcept(t *testing.T) {
	got := except(Valais)
	assert.Len(t, got, 25)
	assert.NotContains(t, got, Valais)
	assert.Len(t, except(), 26)
}

func TestFastDays(t *testing.T) {
	tests := []struct {
		sub  jurisdiction.Subdivision
		year int
		name string
		want string
	}{
		// First Sunday of September 2024 is the 1st.
		{Geneva, 2024, "Geneva Fast", "2024-09-05"},
		{Geneva, 2025, "Geneva Fast", "2025-09-11"},
		{Vaud, 2024, "Federal Fast Monday", "2024-09-16"},
		{Vaud, 2025, "Federal Fast Monday", "2025-09-22"},
		{Glarus, 2024, "Näfels Procession", "2024-04-04"},
	}

	for _, tt := range tests {
		t.Run(tt.sub.String()+" "+tt.name, func(t *testing.T) {
			hs, err := jurisdiction.SubdivisionModel(New(), tt.sub).AllHolidays(tt.year)
			require.NoError(t, err)

			var found bool
			for _, h := range hs {
				if h.Name == tt.name {
					found = true
					assert.Equal(t, tt.want, h.Date.String())
				}
			}
			assert.True(t, found, tt.name)
		})
	}
}
