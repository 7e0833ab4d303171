// Package rules describes how a holiday's date is derived for a given year.
//
// A Rule is a closed set of variants (FixedDate, EasterOffset, NthWeekday,
// WeekdayRelative, DayOffset, ObservedShift). Rules are stateless values; the
// same rule evaluated for the same year always yields the same result.
package rules

import (
	"fmt"
	"time"

	"almanac/internal/calendar"
)

// Kind tags a Rule variant.
type Kind string

const (
	KindFixedDate       Kind = "fixed"
	KindEasterOffset    Kind = "easter"
	KindNthWeekday      Kind = "nth_weekday"
	KindWeekdayRelative Kind = "weekday_relative"
	KindDayOffset       Kind = "offset"
	KindObservedShift   Kind = "observed"
)

// Rule resolves to at most one date per year.
type Rule interface {
	Kind() Kind
	// Resolve returns the date for year; ok is false when the rule has no
	// occurrence that year (29 February in a common year, a missing fifth Monday).
	Resolve(year int) (date calendar.Date, ok bool, err error)
	// Validate reports structural problems without evaluating any year.
	Validate() error

	sealed()
}

// FixedDate is the same month and day every year.
type FixedDate struct {
	Month time.Month
	Day   int
}

func (FixedDate) Kind() Kind { return KindFixedDate }
func (FixedDate) sealed()    {}

func (r FixedDate) Validate() error {
	if r.Month < time.January || r.Month > time.December {
		return &calendar.InvalidRuleError{Reason: fmt.Sprintf("month %d out of range", r.Month)}
	}
	// Leap year so 29 February is accepted.
	if r.Day < 1 || r.Day > calendar.DaysIn(2000, r.Month) {
		return &calendar.InvalidRuleError{Reason: fmt.Sprintf("day %d does not exist in %s", r.Day, r.Month)}
	}
	return nil
}

func (r FixedDate) Resolve(year int) (calendar.Date, bool, error) {
	if err := r.Validate(); err != nil {
		return calendar.Date{}, false, err
	}
	d := calendar.Date{Year: year, Month: r.Month, Day: r.Day}
	if !d.IsValid() {
		return calendar.Date{}, false, nil
	}
	return d, true, nil
}

// EasterOffset is a movable feast: Days after (or before, when negative) Easter Sunday.
type EasterOffset struct {
	Days int
}

func (EasterOffset) Kind() Kind { return KindEasterOffset }
func (EasterOffset) sealed()    {}

func (r EasterOffset) Validate() error {
	if r.Days < -366 || r.Days > 366 {
		return &calendar.InvalidRuleError{Reason: fmt.Sprintf("easter offset %d out of range", r.Days)}
	}
	return nil
}

func (r EasterOffset) Resolve(year int) (calendar.Date, bool, error) {
	if err := r.Validate(); err != nil {
		return calendar.Date{}, false, err
	}
	easter, err := calendar.EasterSunday(year)
	if err != nil {
		return calendar.Date{}, false, err
	}
	return easter.AddDays(r.Days), true, nil
}

// NthWeekday is the N-th Weekday of Month; negative N counts from the end of the month.
type NthWeekday struct {
	Month   time.Month
	Weekday time.Weekday
	N       int
}

func (NthWeekday) Kind() Kind { return KindNthWeekday }
func (NthWeekday) sealed()    {}

func (r NthWeekday) Validate() error {
	// 2000 stands in for any year; only the arguments are checked.
	_, _, err := calendar.NthWeekdayOfMonth(2000, r.Month, r.Weekday, r.N)
	return err
}

func (r NthWeekday) Resolve(year int) (calendar.Date, bool, error) {
	return calendar.NthWeekdayOfMonth(year, r.Month, r.Weekday, r.N)
}

// Direction selects the side of the anchor date a WeekdayRelative rule looks at.
type Direction string

const (
	After  Direction = "after"
	Before Direction = "before"
)

// WeekdayRelative is the first Weekday strictly after or before a fixed anchor
// date, e.g. the Wednesday before 23 November.
type WeekdayRelative struct {
	Month     time.Month
	Day       int
	Weekday   time.Weekday
	Direction Direction
}

func (WeekdayRelative) Kind() Kind { return KindWeekdayRelative }
func (WeekdayRelative) sealed()    {}

func (r WeekdayRelative) Validate() error {
	if err := (FixedDate{Month: r.Month, Day: r.Day}).Validate(); err != nil {
		return err
	}
	if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
		return &calendar.InvalidRuleError{Reason: fmt.Sprintf("weekday %d out of range", r.Weekday)}
	}
	if r.Direction != After && r.Direction != Before {
		return &calendar.InvalidRuleError{Reason: fmt.Sprintf("unknown direction %q", r.Direction)}
	}
	return nil
}

func (r WeekdayRelative) Resolve(year int) (calendar.Date, bool, error) {
	if err := r.Validate(); err != nil {
		return calendar.Date{}, false, err
	}
	anchor, ok, err := FixedDate{Month: r.Month, Day: r.Day}.Resolve(year)
	if err != nil || !ok {
		return calendar.Date{}, ok, err
	}
	if r.Direction == Before {
		return calendar.WeekdayBefore(anchor, r.Weekday), true, nil
	}
	return calendar.WeekdayAfter(anchor, r.Weekday), true, nil
}

// DayOffset moves the result of Base by a fixed number of days, e.g. the day
// after Thanksgiving.
type DayOffset struct {
	Base Rule
	Days int
}

func (DayOffset) Kind() Kind { return KindDayOffset }
func (DayOffset) sealed()    {}

func (r DayOffset) Validate() error {
	if r.Base == nil {
		return &calendar.InvalidRuleError{Reason: "offset rule has no base rule"}
	}
	if r.Days < -31 || r.Days > 31 {
		return &calendar.InvalidRuleError{Reason: fmt.Sprintf("day offset %d out of range", r.Days)}
	}
	return r.Base.Validate()
}

func (r DayOffset) Resolve(year int) (calendar.Date, bool, error) {
	if err := r.Validate(); err != nil {
		return calendar.Date{}, false, err
	}
	base, ok, err := r.Base.Resolve(year)
	if err != nil || !ok {
		return calendar.Date{}, ok, err
	}
	return base.AddDays(r.Days), true, nil
}

// ObservedShift moves the result of Base off the weekend according to Policy.
//
// With SubstituteOnly set the rule only yields a date when a shift actually
// happened, which models "(observed)" substitute days listed next to the
// actual holiday.
type ObservedShift struct {
	Base           Rule
	Policy         calendar.WeekendPolicy
	SubstituteOnly bool
}

func (ObservedShift) Kind() Kind { return KindObservedShift }
func (ObservedShift) sealed()    {}

func (r ObservedShift) Validate() error {
	if r.Base == nil {
		return &calendar.InvalidRuleError{Reason: "observed rule has no base rule"}
	}
	if !r.Policy.IsValid() {
		return &calendar.InvalidRuleError{Reason: fmt.Sprintf("unknown weekend policy %q", r.Policy)}
	}
	return r.Base.Validate()
}

func (r ObservedShift) Resolve(year int) (calendar.Date, bool, error) {
	if err := r.Validate(); err != nil {
		return calendar.Date{}, false, err
	}
	base, ok, err := r.Base.Resolve(year)
	if err != nil || !ok {
		return calendar.Date{}, ok, err
	}
	shifted := calendar.ShiftIfWeekend(base, r.Policy)
	if r.SubstituteOnly && shifted == base {
		return calendar.Date{}, false, nil
	}
	return shifted, true, nil
}
