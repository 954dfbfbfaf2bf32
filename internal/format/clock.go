package format

import "time"

// Clock supplies the current wall time to derivation entry points.
//
// Every derived value in this module ("days remaining", expiry banding,
// elapsed percentage) depends on a reference instant. Sampling the wall
// clock inside a computation makes it untestable, so "now" is always an
// explicit parameter and callers at the edge obtain it from a Clock.
//
// Tests pin the instant with testutil.FixedClock; the CLI uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the operating system wall clock.
//
// Thread-safety: SystemClock is stateless and safe for concurrent use.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
