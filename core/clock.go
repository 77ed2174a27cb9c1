package core

import "time"

// Clock tracks per-frame delta and total elapsed time in seconds.
// Update must be called exactly once per frame, before any entity update.
// Delta is a raw difference: a non-monotonic provider can yield a negative
// value, which is passed through unclamped.
type Clock struct {
	provider TimeProvider
	start    time.Time
	previous time.Time

	// Delta is seconds since the previous Update call
	Delta float64
	// Elapsed is seconds since clock creation
	Elapsed float64
}

// NewClock creates a clock anchored at provider.Now()
func NewClock(provider TimeProvider) *Clock {
	now := provider.Now()
	return &Clock{
		provider: provider,
		start:    now,
		previous: now,
	}
}

// Update samples the provider and recomputes Delta and Elapsed
func (c *Clock) Update() {
	now := c.provider.Now()
	c.Delta = now.Sub(c.previous).Seconds()
	c.Elapsed = now.Sub(c.start).Seconds()
	c.previous = now
}
