package roster

import (
	"fmt"
	"strings"
)

// Rule is the cyclical pattern a person works to.
type Rule string

const (
	// RuleFixedDay always yields ShiftDay.
	RuleFixedDay Rule = "fixed-day"

	// RuleFourDayRotation cycles day, night, rest, rest every four days.
	RuleFourDayRotation Rule = "four-day-rotation"
)

// ruleAliases maps accepted spellings, including the Chinese
// rule names, onto the canonical rules.
var ruleAliases = map[string]Rule{
	"fixed-day":         RuleFixedDay,
	"fixed":             RuleFixedDay,
	"fixedday":          RuleFixedDay,
	"日勤":                RuleFixedDay,
	"four-day-rotation": RuleFourDayRotation,
	"rotation":          RuleFourDayRotation,
	"fourdayrotation":   RuleFourDayRotation,
	"白夜休休":              RuleFourDayRotation,
}

// ParseRule maps a rule name onto a known Rule. Matching ignores case and
// surrounding whitespace.
func ParseRule(s string) (Rule, error) {
	if r, ok := ruleAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return Rule(s), fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// NormalizeRule is ParseRule without the error: unknown names come back
// unchanged so that the registry can report them per person.
func NormalizeRule(s string) Rule {
	r, _ := ParseRule(s)
	return r
}

// IsValid reports whether r is one of the known rules.
func (r Rule) IsValid() bool {
	switch r {
	case RuleFixedDay, RuleFourDayRotation:
		return true
	default:
		return false
	}
}

// Shift is the work assignment for one person on one day.
type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
	ShiftRest  Shift = "rest"
)

// RotationPeriod is the length in days of RuleFourDayRotation.
const RotationPeriod = 4

// rotation is indexed by phase.
var rotation = [RotationPeriod]Shift{ShiftDay, ShiftNight, ShiftRest, ShiftRest}

// Status classifies a Result.
type Status string

const (
	StatusOK             Status = "ok"
	StatusPersonNotFound Status = "person_not_found"
	StatusUnknownRule    Status = "unknown_rule"
)

// Record is the caller-supplied description of one person.
type Record struct {
	Rule  Rule
	Start string // anchor date, YYYY-MM-DD
}

// Person is a registered person with a parsed anchor date.
type Person struct {
	Name   string `json:"name"`
	Rule   Rule   `json:"rule"`
	Anchor Date   `json:"anchor"`
}

// Result is the outcome of a shift query for one person on one day.
// Shift is empty unless Status is StatusOK.
type Result struct {
	Person string `json:"person"`
	Date   Date   `json:"date"`
	Rule   Rule   `json:"rule,omitempty"`
	Shift  Shift  `json:"shift,omitempty"`
	Status Status `json:"status"`
}

// OK reports whether the query produced a shift.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Err returns the condition behind a non-OK result, or nil.
func (r Result) Err() error {
	switch r.Status {
	case StatusOK:
		return nil
	case StatusPersonNotFound:
		return fmt.Errorf("%w: %s", ErrPersonNotFound, r.Person)
	case StatusUnknownRule:
		return fmt.Errorf("%w: %q for %s", ErrUnknownRule, r.Rule, r.Person)
	default:
		return fmt.Errorf("unknown result status: %s", r.Status)
	}
}

// Entry is one day of a person's schedule.
type Entry struct {
	Date   Date   `json:"date"`
	Shift  Shift  `json:"shift,omitempty"`
	Status Status `json:"status"`
}
