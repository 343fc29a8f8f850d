// Package clock abstracts "now" so that commands defaulting to today can be
// tested deterministically.
package clock

import (
	"time"

	"github.com/danieljhkim/rota/internal/roster"
)

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time in the local zone.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock implements Clock with a fixed time for testing.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a new FakeClock with the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}

// Set updates the fixed time.
func (c *FakeClock) Set(t time.Time) {
	c.current = t
}

// AdvanceDays moves the fixed time by n calendar days.
func (c *FakeClock) AdvanceDays(n int) {
	c.current = c.current.AddDate(0, 0, n)
}

// Today returns the calendar date of c.Now() in its own zone.
func Today(c Clock) roster.Date {
	return roster.DateOf(c.Now())
}
