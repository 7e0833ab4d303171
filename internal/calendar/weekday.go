package calendar

import (
	"fmt"
	"time"
)

// NthWeekdayOfMonth finds the 1st..5th occurrence of weekday in month, or for
// negative n counts back from the end of the month (-1 is the last one).
//
// ok is false when the month has no such occurrence (a fifth Friday, say); that
// is a normal outcome, not an error. n == 0 or |n| > 5 is an *InvalidRuleError.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) (date Date, ok bool, err error) {
	if n == 0 || n > 5 || n < -5 {
		return Date{}, false, &InvalidRuleError{Reason: fmt.Sprintf("nth weekday must be in -5..-1 or 1..5, got %d", n)}
	}
	if month < time.January || month > time.December {
		return Date{}, false, &InvalidRuleError{Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if weekday < time.Sunday || weekday > time.Saturday {
		return Date{}, false, &InvalidRuleError{Reason: fmt.Sprintf("weekday %d out of range", weekday)}
	}

	// Counting backwards starts from the first occurrence in the following month.
	anchorMonth, skip := month, n-1
	if n < 0 {
		anchorMonth, skip = month+1, n
	}

	first := NewDate(year, anchorMonth, 1)
	toWeekday := int(weekday - first.Weekday())
	if toWeekday < 0 {
		toWeekday += 7
	}

	target := first.AddDays(toWeekday + skip*7)
	if target.Month != month {
		return Date{}, false, nil
	}
	return target, true, nil
}

// WeekdayAfter returns the first weekday strictly after d.
func WeekdayAfter(d Date, weekday time.Weekday) Date {
	delta := int(weekday - d.Weekday())
	if delta <= 0 {
		delta += 7
	}
	return d.AddDays(delta)
}

// WeekdayBefore returns the first weekday strictly before d.
func WeekdayBefore(d Date, weekday time.Weekday) Date {
	delta := int(d.Weekday() - weekday)
	if delta <= 0 {
		delta += 7
	}
	return d.AddDays(-delta)
}

// WeekendPolicy decides where a holiday falling on a weekend is observed.
type WeekendPolicy string

const (
	NoShift          WeekendPolicy = "none"
	SaturdayToFriday WeekendPolicy = "saturday_to_friday"
	SaturdayToMonday WeekendPolicy = "saturday_to_monday"
	SundayToMonday   WeekendPolicy = "sunday_to_monday"
	// NearestWeekday observes Saturday holidays on Friday and Sunday holidays on Monday.
	NearestWeekday WeekendPolicy = "nearest_weekday"
	// FollowingMonday observes both Saturday and Sunday holidays on Monday.
	FollowingMonday WeekendPolicy = "following_monday"
)

var validPolicies = map[WeekendPolicy]bool{
	NoShift:          true,
	SaturdayToFriday: true,
	SaturdayToMonday: true,
	SundayToMonday:   true,
	NearestWeekday:   true,
	FollowingMonday:  true,
}

// ParseWeekendPolicy validates a policy name coming from rule data.
func ParseWeekendPolicy(s string) (WeekendPolicy, error) {
	p := WeekendPolicy(s)
	if !p.IsValid() {
		return "", &InvalidRuleError{Reason: fmt.Sprintf("unknown weekend policy %q", s)}
	}
	return p, nil
}

func (p WeekendPolicy) IsValid() bool {
	return validPolicies[p]
}

func (p WeekendPolicy) String() string {
	return string(p)
}

// ShiftIfWeekend applies policy to d. Weekdays, and weekend days the policy does
// not mention, are returned unchanged.
func ShiftIfWeekend(d Date, policy WeekendPolicy) Date {
	switch d.Weekday() {
	case time.Saturday:
		switch policy {
		case SaturdayToFriday, NearestWeekday:
			return d.AddDays(-1)
		case SaturdayToMonday, FollowingMonday:
			return d.AddDays(2)
		}
	case time.Sunday:
		switch policy {
		case SundayToMonday, NearestWeekday, FollowingMonday:
			return d.AddDays(1)
		}
	}
	return d
}
