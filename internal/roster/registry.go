package roster

import (
	"fmt"
	"sort"
)

// Registry holds person records and answers shift queries.
// It is immutable after New returns.
type Registry struct {
	people map[string]Person
	names  []string // sorted
}

// New builds a registry from records keyed by person name.
// Every anchor date is parsed up front; the first malformed one fails
// construction with ErrInvalidDateFormat. Unknown rules are accepted and
// reported per query.
func New(records map[string]Record) (*Registry, error) {
	r := &Registry{
		people: make(map[string]Person, len(records)),
		names:  make([]string, 0, len(records)),
	}

	for name := range records {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	for _, name := range r.names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty person name", ErrInvalidRecord)
		}
		rec := records[name]
		anchor, err := ParseDate(rec.Start)
		if err != nil {
			return nil, fmt.Errorf("anchor date for %s: %w", name, err)
		}
		r.people[name] = Person{Name: name, Rule: rec.Rule, Anchor: anchor}
	}

	return r, nil
}

// Len returns the number of registered people.
func (r *Registry) Len() int {
	return len(r.names)
}

// People returns every registered person ordered by name.
func (r *Registry) People() []Person {
	out := make([]Person, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.people[name])
	}
	return out
}

// Lookup returns the record for name.
func (r *Registry) Lookup(name string) (Person, bool) {
	p, ok := r.people[name]
	return p, ok
}

// ShiftOn parses date and returns name's shift on that day.
func (r *Registry) ShiftOn(name, date string) (Result, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Result{}, err
	}
	return r.ShiftOnDate(name, d), nil
}

// ShiftOnDate returns name's shift on d. An absent name yields a
// StatusPersonNotFound result rather than an error.
func (r *Registry) ShiftOnDate(name string, d Date) Result {
	p, ok := r.people[name]
	if !ok {
		return Result{Person: name, Date: d, Status: StatusPersonNotFound}
	}
	return p.shiftOn(d)
}

// ShiftRange parses both bounds and returns every person's schedule from
// start to end inclusive. Neither bound is evaluated unless both parse.
func (r *Registry) ShiftRange(start, end string) (map[string][]Entry, error) {
	s, err := ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("range start: %w", err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("range end: %w", err)
	}
	return r.ShiftRangeDates(s, e), nil
}

// ShiftRangeDates returns every person's schedule from start to end
// inclusive, one entry per day in date order. When end is before start
// every person maps to an empty schedule.
func (r *Registry) ShiftRangeDates(start, end Date) map[string][]Entry {
	days := 0
	if !end.Before(start) {
		days = int(end.DaysSince(start)) + 1
	}

	out := make(map[string][]Entry, len(r.names))
	for _, name := range r.names {
		out[name] = r.people[name].schedule(start, days)
	}
	return out
}

// ShiftForDay parses date and returns everyone's shift on that day.
func (r *Registry) ShiftForDay(date string) (map[string]Result, error) {
	d, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	return r.ShiftForDate(d), nil
}

// ShiftForDate returns everyone's shift on d, one entry per person.
func (r *Registry) ShiftForDate(d Date) map[string]Result {
	out := make(map[string]Result, len(r.names))
	for _, name := range r.names {
		out[name] = r.people[name].shiftOn(d)
	}
	return out
}

// phase returns p's position in the rotation on d, always in [0, RotationPeriod).
func (p Person) phase(d Date) int {
	return floorMod(d.DaysSince(p.Anchor), RotationPeriod)
}

func (p Person) shiftOn(d Date) Result {
	res := Result{Person: p.Name, Date: d, Rule: p.Rule, Status: StatusOK}
	switch p.Rule {
	case RuleFixedDay:
		res.Shift = ShiftDay
	case RuleFourDayRotation:
		res.Shift = rotation[p.phase(d)]
	default:
		res.Status = StatusUnknownRule
	}
	return res
}

// schedule returns days consecutive entries starting at start. The rotation
// phase is computed once and then stepped, which matches shiftOn day by day.
func (p Person) schedule(start Date, days int) []Entry {
	entries := make([]Entry, 0, days)
	switch p.Rule {
	case RuleFixedDay:
		for i := 0; i < days; i++ {
			entries = append(entries, Entry{Date: start.AddDays(i), Shift: ShiftDay, Status: StatusOK})
		}
	case RuleFourDayRotation:
		phase := p.phase(start)
		for i := 0; i < days; i++ {
			entries = append(entries, Entry{Date: start.AddDays(i), Shift: rotation[phase], Status: StatusOK})
			phase = (phase + 1) % RotationPeriod
		}
	default:
		for i := 0; i < days; i++ {
			entries = append(entries, Entry{Date: start.AddDays(i), Status: StatusUnknownRule})
		}
	}
	return entries
}

// floorMod returns a mod m in [0, m) for m > 0, also for negative a.
func floorMod(a int64, m int) int {
	r := int(a % int64(m))
	if r < 0 {
		r += m
	}
	return r
}
