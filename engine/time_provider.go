package engine

import "time"

// TimeProvider is the wall-clock source for the frame driver
// Simulation state never reads it; only frame deltas derive from it
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with its monotonic component
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock measures wall time between successive ticks of the render loop
type FrameClock struct {
	provider TimeProvider
	last     time.Time
	started  bool
}

// NewFrameClock creates a clock over provider, nil uses the system clock
func NewFrameClock(provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{provider: provider}
}

// Tick returns the time elapsed since the previous Tick, zero on the first call
// Backward jumps read as zero
func (c *FrameClock) Tick() time.Duration {
	now := c.provider.Now()
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta
}

// Now exposes the underlying provider
func (c *FrameClock) Now() time.Time {
	return c.provider.Now()
}
