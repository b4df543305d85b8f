package starfield

import "time"

// Clock is the wall-clock source for star flicker
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrameClock advances by a fixed step on every Tick.
// Replays use it so flicker follows frames instead of wall time.
type FrameClock struct {
	now  time.Time
	step time.Duration
}

// NewFrameClock creates a clock starting at startMillis (Unix ms)
func NewFrameClock(startMillis int64, framerate int) *FrameClock {
	if framerate <= 0 {
		framerate = 60
	}
	return &FrameClock{
		now:  time.UnixMilli(startMillis),
		step: time.Second / time.Duration(framerate),
	}
}

func (c *FrameClock) Now() time.Time {
	return c.now
}

// Tick moves the clock one frame forward
func (c *FrameClock) Tick() {
	c.now = c.now.Add(c.step)
}

type ticker interface {
	Tick()
}
