// Package testutil provides deterministic test doubles for the
// derivation packages.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a format.Clock pinned to a known instant.
//
// Pinning "now" makes day-offset and banding assertions exact: a test can
// place a plan end date five days after the pinned instant and assert the
// literal "5" in the alert title.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, so parallel subtests can share one clock.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the pinned instant forward (or backward, with a negative
// duration) and returns the new instant.
func (c *FixedClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Set repins the clock to a specific instant. Used for test reuse.
func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
