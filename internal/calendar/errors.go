package calendar

import (
	"errors"
	"fmt"
)

// Supported proleptic Gregorian range. 1583 is the first full year after the
// Gregorian reform; the upper bound keeps dates within four-digit years.
const (
	MinYear = 1583
	MaxYear = 9999
)

// DateRangeError reports a year outside [Min, Max].
type DateRangeError struct {
	Year int
	Min  int
	Max  int
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("year %d outside supported range %d..%d", e.Year, e.Min, e.Max)
}

// InvalidRuleError reports a malformed rule. It is a programming error in the
// rule data and is never recovered by retrying.
type InvalidRuleError struct {
	Rule   string // name of the offending rule or entry, when known
	Reason string
	Err    error
}

func (e *InvalidRuleError) Error() string {
	msg := "invalid rule"
	if e.Rule != "" {
		msg += fmt.Sprintf(" %q", e.Rule)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *InvalidRuleError) Unwrap() error {
	return e.Err
}

// CheckYear returns a *DateRangeError when year is outside [MinYear, MaxYear].
func CheckYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &DateRangeError{Year: year, Min: MinYear, Max: MaxYear}
	}
	return nil
}

// IsDateRange reports whether err is or wraps a *DateRangeError.
func IsDateRange(err error) bool {
	var re *DateRangeError
	return errors.As(err, &re)
}

// IsInvalidRule reports whether err is or wraps an *InvalidRuleError.
func IsInvalidRule(err error) bool {
	var ie *InvalidRuleError
	return errors.As(err, &ie)
}
