package rules

import (
	"errors"
	"fmt"

	"almanac/internal/calendar"
	"almanac/internal/domain"
)

// Entry is a named rule with an optional validity range. From and To are
// inclusive years; zero means unbounded on that side.
type Entry struct {
	Name string
	Rule Rule
	From int
	To   int
}

// AppliesTo reports whether the entry is in force in year.
func (e Entry) AppliesTo(year int) bool {
	if e.From != 0 && year < e.From {
		return false
	}
	if e.To != 0 && year > e.To {
		return false
	}
	return true
}

// Validate checks the entry and its rule, naming the entry in any error.
func (e Entry) Validate() error {
	if e.Name == "" {
		return &calendar.InvalidRuleError{Reason: "entry has no name"}
	}
	if e.Rule == nil {
		return &calendar.InvalidRuleError{Rule: e.Name, Reason: "entry has no rule"}
	}
	if e.From != 0 && e.To != 0 && e.From > e.To {
		return &calendar.InvalidRuleError{Rule: e.Name, Reason: fmt.Sprintf("validity range %d..%d is empty", e.From, e.To)}
	}
	if err := e.Rule.Validate(); err != nil {
		return named(e.Name, err)
	}
	return nil
}

// Set is the ordered rule table of one jurisdiction.
type Set []Entry

// Validate checks every entry and joins the failures.
func (s Set) Validate() error {
	var errs []error
	for _, e := range s {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Evaluate resolves every entry in force for year, in declaration order. The
// result is not sorted. The first malformed rule aborts evaluation.
func (s Set) Evaluate(year int, jurisdiction string) ([]domain.Holiday, error) {
	if err := calendar.CheckYear(year); err != nil {
		return nil, err
	}

	holidays := make([]domain.Holiday, 0, len(s))
	for _, e := range s {
		if !e.AppliesTo(year) {
			continue
		}
		if e.Rule == nil {
			return nil, &calendar.InvalidRuleError{Rule: e.Name, Reason: "entry has no rule"}
		}
		date, ok, err := e.Rule.Resolve(year)
		if err != nil {
			return nil, named(e.Name, err)
		}
		if !ok {
			continue
		}
		holidays = append(holidays, domain.Holiday{
			Name:         e.Name,
			Date:         date,
			Jurisdiction: jurisdiction,
		})
	}
	return holidays, nil
}

// named attaches the entry name to rule errors that do not carry one yet.
func named(name string, err error) error {
	var ie *calendar.InvalidRuleError
	if errors.As(err, &ie) && ie.Rule == "" {
		return &calendar.InvalidRuleError{Rule: name, Reason: ie.Reason, Err: ie.Err}
	}
	return err
}
