package sitetest

import "time"

// FakeClock is a manually advanced time source for deterministic
// animation tests.
type FakeClock struct {
	now time.Time
}

// NewFakeClock creates a fake clock at a fixed arbitrary epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
