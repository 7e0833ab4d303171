package calendar

import "time"

// EasterSunday returns the date of Western (Gregorian) Easter Sunday using the
// anonymous Gregorian algorithm (Meeus/Jones/Butcher). Years outside
// [MinYear, MaxYear] return a *DateRangeError.
func EasterSunday(year int) (Date, error) {
	if err := CheckYear(year); err != nil {
		return Date{}, err
	}

	a := year % 19 // position in the Metonic cycle
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30 // epact
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7 // days to the following Sunday
	m := (a + 11*h + 22*l) / 451

	n := h + l - 7*m + 114
	return Date{Year: year, Month: time.Month(n / 31), Day: n%31 + 1}, nil
}
