package game

import "time"

// Clock measures wall-clock seconds between frames. The first Tick returns
// zero so nothing integrates over the time spent in startup.
type Clock struct {
	last    time.Time
	started bool

	now func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Tick returns the elapsed seconds since the previous Tick, never negative.
func (c *Clock) Tick() float32 {
	now := c.now()
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	dt := float32(now.Sub(c.last).Seconds())
	c.last = now
	if dt < 0 {
		// Wall clock stepped backwards; skip the frame rather than rewind.
		dt = 0
	}
	return dt
}
