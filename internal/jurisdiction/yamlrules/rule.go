package yamlrules

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"almanac/internal/calendar"
	"almanac/internal/rules"
)

// yamlRule is the union of every rule variant's fields; Kind selects which
// of them are read.
type yamlRule struct {
	Kind           string    `yaml:"kind"`
	Month          int       `yaml:"month"`
	Day            int       `yaml:"day"`
	Weekday        string    `yaml:"weekday"`
	N              int       `yaml:"n"`
	Days           int       `yaml:"days"`
	Direction      string    `yaml:"direction"`
	Policy         string    `yaml:"policy"`
	SubstituteOnly bool      `yaml:"substitute_only"`
	Base           *yamlRule `yaml:"base"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &calendar.InvalidRuleError{Reason: fmt.Sprintf("unknown weekday %q", s)}
	}
	return wd, nil
}

func (y *yamlRule) toRule() (rules.Rule, error) {
	switch rules.Kind(strings.ToLower(strings.TrimSpace(y.Kind))) {
	case rules.KindFixedDate:
		return rules.FixedDate{Month: time.Month(y.Month), Day: y.Day}, nil
	case rules.KindEasterOffset:
		return rules.EasterOffset{Days: y.Days}, nil
	case rules.KindNthWeekday:
		wd, err := parseWeekday(y.Weekday)
		if err != nil {
			return nil, err
		}
		return rules.NthWeekday{Month: time.Month(y.Month), Weekday: wd, N: y.N}, nil
	case rules.KindWeekdayRelative:
		wd, err := parseWeekday(y.Weekday)
		if err != nil {
			return nil, err
		}
		return rules.WeekdayRelative{
			Month:     time.Month(y.Month),
			Day:       y.Day,
			Weekday:   wd,
			Direction: rules.Direction(strings.ToLower(y.Direction)),
		}, nil
	case rules.KindDayOffset:
		base, err := y.base()
		if err != nil {
			return nil, err
		}
		return rules.DayOffset{Base: base, Days: y.Days}, nil
	case rules.KindObservedShift:
		base, err := y.base()
		if err != nil {
			return nil, err
		}
		policy, err := calendar.ParseWeekendPolicy(y.Policy)
		if err != nil {
			return nil, err
		}
		return rules.ObservedShift{Base: base, Policy: policy, SubstituteOnly: y.SubstituteOnly}, nil
	default:
		return nil, &calendar.InvalidRuleError{Reason: fmt.Sprintf("unknown rule kind %q", y.Kind)}
	}
}

func (y *yamlRule) base() (rules.Rule, error) {
	if y.Base == nil {
		return nil, errors.New(y.Kind + " rule needs a base rule")
	}
	return y.Base.toRule()
}
