// Package mock provides test doubles for BDD integration tests.
package mock

import "time"

// Clock is a settable clock so scenarios can pin today's date.
type Clock struct {
	now time.Time
}

// NewClock creates a clock pinned to the current wall time.
func NewClock() *Clock {
	return &Clock{now: time.Now().UTC()}
}

// Set pins the clock to the given time.
func (c *Clock) Set(t time.Time) {
	c.now = t
}

// Now implements adapter.Clock.
func (c *Clock) Now() time.Time {
	return c.now
}
