package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/internal/calendar"
)

func resolve(t *testing.T, r Rule, year int) (string, bool) {
	t.Helper()
	d, ok, err := r.Resolve(year)
	require.NoError(t, err)
	if !ok {
		return "", false
	}
	return d.String(), true
}

func TestRuleResolve(t *testing.T) {
	thanksgiving := NthWeekday{Month: time.November, Weekday: time.Thursday, N: 4}
	independence := FixedDate{Month: time.July, Day: 4}

	tests := []struct {
		name   string
		rule   Rule
		year   int
		want   string
		wantOK bool
	}{
		{"fixed date", independence, 2024, "2024-07-04", true},
		{"leap day in leap year", FixedDate{Month: time.February, Day: 29}, 2024, "2024-02-29", true},
		{"leap day in common year", FixedDate{Month: time.February, Day: 29}, 2023, "", false},
		{"good friday", EasterOffset{Days: -2}, 2024, "2024-03-29", true},
		{"whit monday", EasterOffset{Days: 50}, 2025, "2025-06-09", true},
		{"corpus christi", EasterOffset{Days: 60}, 2024, "2024-05-30", true},
		{"labor day", NthWeekday{Month: time.September, Weekday: time.Monday, N: 1}, 2024, "2024-09-02", true},
		{"missing fifth friday", NthWeekday{Month: time.November, Weekday: time.Friday, N: 5}, 2025, "", false},
		{"repentance day", WeekdayRelative{Month: time.November, Day: 23, Weekday: time.Wednesday, Direction: Before}, 2024, "2024-11-20", true},
		{"weekday after", WeekdayRelative{Month: time.November, Day: 1, Weekday: time.Tuesday, Direction: After}, 2024, "2024-11-05", true},
		{"day after thanksgiving", DayOffset{Base: thanksgiving, Days: 1}, 2024, "2024-11-29", true},
		{"federal fast monday", DayOffset{Base: NthWeekday{Month: time.September, Weekday: time.Sunday, N: 3}, Days: 1}, 2024, "2024-09-16", true},
		{"observed shift moves saturday", ObservedShift{Base: independence, Policy: calendar.NearestWeekday}, 2026, "2026-07-03", true},
		{"observed shift keeps weekday", ObservedShift{Base: independence, Policy: calendar.NearestWeekday}, 2024, "2024-07-04", true},
		{"substitute only without shift", ObservedShift{Base: independence, Policy: calendar.NearestWeekday, SubstituteOnly: true}, 2024, "", false},
		{"substitute only with shift", ObservedShift{Base: independence, Policy: calendar.NearestWeekday, SubstituteOnly: true}, 2027, "2027-07-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolve(t, tt.rule, tt.year)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleResolveIsDeterministic(t *testing.T) {
	r := DayOffset{Base: EasterOffset{Days: 39}, Days: 11}
	first, _ := resolve(t, r, 2031)
	for range 10 {
		again, _ := resolve(t, r, 2031)
		assert.Equal(t, first, again)
	}
}

func TestRuleValidate(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{"month zero", FixedDate{Month: 0, Day: 1}},
		{"thirty first of april", FixedDate{Month: time.April, Day: 31}},
		{"day zero", FixedDate{Month: time.May, Day: 0}},
		{"nth zero", NthWeekday{Month: time.May, Weekday: time.Monday, N: 0}},
		{"nth six", NthWeekday{Month: time.May, Weekday: time.Monday, N: 6}},
		{"nth minus six", NthWeekday{Month: time.May, Weekday: time.Monday, N: -6}},
		{"easter far away", EasterOffset{Days: 400}},
		{"relative without direction", WeekdayRelative{Month: time.May, Day: 1, Weekday: time.Monday}},
		{"offset without base", DayOffset{Days: 1}},
		{"offset with bad base", DayOffset{Base: NthWeekday{Month: time.May, Weekday: time.Monday}, Days: 1}},
		{"observed without base", ObservedShift{Policy: calendar.NearestWeekday}},
		{"observed with bad policy", ObservedShift{Base: FixedDate{Month: time.May, Day: 1}, Policy: "whenever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			require.Error(t, err)
			assert.True(t, calendar.IsInvalidRule(err))

			_, ok, err := tt.rule.Resolve(2024)
			assert.False(t, ok)
			assert.True(t, calendar.IsInvalidRule(err), "resolve must fail fast")
		})
	}
}

func TestSetEvaluate(t *testing.T) {
	set := Set{
		{Name: "Christmas Day", Rule: FixedDate{Month: time.December, Day: 25}},
		{Name: "Good Friday", Rule: EasterOffset{Days: -2}},
		{Name: "Great Prayer Day", Rule: EasterOffset{Days: 26}, To: 2023},
		{Name: "Europe Day", Rule: FixedDate{Month: time.May, Day: 9}, From: 2019},
	}
	require.NoError(t, set.Validate())

	t.Run("keeps declaration order", func(t *testing.T) {
		got, err := set.Evaluate(2024, "XX")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Christmas Day", got[0].Name)
		assert.Equal(t, "Good Friday", got[1].Name)
		assert.Equal(t, "Europe Day", got[2].Name)
		for _, h := range got {
			assert.Equal(t, "XX", h.Jurisdiction)
		}
	})

	t.Run("validity range", func(t *testing.T) {
		got, err := set.Evaluate(2018, "XX")
		require.NoError(t, err)
		names := make([]string, 0, len(got))
		for _, h := range got {
			names = append(names, h.Name)
		}
		assert.Equal(t, []string{"Christmas Day", "Good Friday", "Great Prayer Day"}, names)
	})

	t.Run("year out of range", func(t *testing.T) {
		_, err := set.Evaluate(1200, "XX")
		assert.True(t, calendar.IsDateRange(err))
	})

	t.Run("empty set yields no holidays", func(t *testing.T) {
		got, err := Set{}.Evaluate(2024, "XX")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSetEvaluateFailsFastOnInvalidRule(t *testing.T) {
	set := Set{
		{Name: "New Year's Day", Rule: FixedDate{Month: time.January, Day: 1}},
		{Name: "Broken", Rule: NthWeekday{Month: time.May, Weekday: time.Monday, N: 0}},
	}

	_, err := set.Evaluate(2024, "XX")
	require.Error(t, err)

	var ie *calendar.InvalidRuleError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Broken", ie.Rule)
}

func TestSetValidate(t *testing.T) {
	set := Set{
		{Name: "", Rule: FixedDate{Month: time.January, Day: 1}},
		{Name: "No rule"},
		{Name: "Inverted", Rule: FixedDate{Month: time.May, Day: 1}, From: 2020, To: 2010},
		{Name: "Fine", Rule: FixedDate{Month: time.May, Day: 1}},
	}

	err := set.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry has no name")
	assert.Contains(t, err.Error(), `"No rule"`)
	assert.Contains(t, err.Error(), "2020..2010")
	assert.NotContains(t, err.Error(), "Fine")
}
