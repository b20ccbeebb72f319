package engine

import "time"

// FrameClock converts successive wall times into frame deltas
// Pause time is excluded by resetting the baseline on resume, not by tracking it
type FrameClock struct {
	last     time.Time
	maxDelta float64
}

// NewFrameClock creates a clock whose deltas are capped at maxDelta seconds
func NewFrameClock(maxDelta float64) *FrameClock {
	return &FrameClock{maxDelta: maxDelta}
}

// Reset moves the baseline to now without producing a delta
func (c *FrameClock) Reset(now time.Time) {
	c.last = now
}

// Delta returns seconds since the baseline and moves the baseline to now
// The first call after construction returns 0
func (c *FrameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}
