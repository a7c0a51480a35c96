// Package adapters provides integration-layer implementations of the
// application adapter interfaces.
package adapters

import "time"

// SystemClock reads the wall clock.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock instance.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
