package core

import "time"

// Clock is a monotonic time source measured from the start of a session.
type Clock interface {
	Now() time.Duration
}

// TickClock is a simulated clock that moves by one fixed step per tick.
// Headless runs and tests use it to make timers reproducible.
type TickClock struct {
	step time.Duration
	now  time.Duration
}

// NewTickClock creates a clock advancing 1/tickRate seconds per Advance.
func NewTickClock(tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{step: time.Second / time.Duration(tickRate)}
}

// Advance moves the clock forward by one tick.
func (c *TickClock) Advance() {
	c.now += c.step
}

// Step returns the duration of one tick.
func (c *TickClock) Step() time.Duration {
	return c.step
}

// Now returns the simulated time elapsed.
func (c *TickClock) Now() time.Duration {
	return c.now
}

// MonotonicClock reads the process monotonic clock.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock starting at zero now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the wall time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}
