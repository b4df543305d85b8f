package tween

import (
	"math"

	"github.com/golang/geo/r3"
)

// Playable is anything the Animator or a Timeline can advance.
type Playable interface {
	// Update advances by dt seconds and reports whether playback has ended
	// (completed or cancelled).
	Update(dt float64) bool
	// Cancel stops playback; no further writes or callbacks happen.
	Cancel()
	// Done reports whether playback has ended.
	Done() bool
	// Duration returns the nominal length in seconds, delay included.
	Duration() float64
}

// Prop is one animated numeric property.
type Prop struct {
	Get func() float64
	Set func(float64)
	To  float64
}

// Float animates the float64 behind p
func Float(p *float64, to float64) Prop {
	return Prop{
		Get: func() float64 { return *p },
		Set: func(v float64) { *p = v },
		To:  to,
	}
}

// Vec animates the three components of v
func Vec(v *r3.Vector, to r3.Vector) []Prop {
	return []Prop{
		Float(&v.X, to.X),
		Float(&v.Y, to.Y),
		Float(&v.Z, to.Z),
	}
}

// Config controls a tween's timing and callbacks.
type Config struct {
	Duration float64 // seconds; <= 0 completes on the first update
	Delay    float64 // seconds before the tween starts
	Ease     Easing  // nil uses DefaultEase

	OnStart func()
	// OnUpdate receives linear progress in [0, 1] after props are written.
	OnUpdate func(progress float64)
	// OnComplete is called exactly once, right after the progress=1 update.
	OnComplete func()
}

// Tween interpolates a set of props from their values at start time to
// their targets.
type Tween struct {
	props []Prop
	from  []float64
	cfg   Config

	wait     float64
	elapsed  float64
	progress float64

	started   bool
	completed bool
	cancelled bool
}

// New creates a tween. Start values are read when it starts, after Delay.
func New(props []Prop, cfg Config) *Tween {
	if cfg.Duration < 0 {
		cfg.Duration = 0
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.Ease == nil {
		cfg.Ease = DefaultEase
	}
	return &Tween{
		props: props,
		cfg:   cfg,
		wait:  cfg.Delay,
	}
}

// Call creates a zero-length tween that only runs fn on completion
func Call(fn func()) *Tween {
	return New(nil, Config{OnComplete: fn})
}

// Update implements Playable
func (t *Tween) Update(dt float64) bool {
	if t.completed || t.cancelled {
		return true
	}
	if dt < 0 {
		dt = 0
	}

	if t.wait > 0 {
		if dt < t.wait {
			t.wait -= dt
			return false
		}
		dt -= t.wait
		t.wait = 0
	}

	if !t.started {
		t.start()
		if t.cancelled {
			return true
		}
	}

	t.elapsed += dt
	p := 1.0
	if t.cfg.Duration > 0 {
		p = math.Min(t.elapsed/t.cfg.Duration, 1)
	}
	// Progress never moves backwards
	if p < t.progress {
		p = t.progress
	}
	t.progress = p

	eased := t.cfg.Ease(p)
	if p >= 1 {
		eased = 1
	}
	for i, prop := range t.props {
		prop.Set(Lerp(t.from[i], prop.To, eased))
	}

	if t.cfg.OnUpdate != nil {
		t.cfg.OnUpdate(p)
	}
	if t.cancelled {
		return true
	}

	if p >= 1 {
		t.completed = true
		if t.cfg.OnComplete != nil {
			t.cfg.OnComplete()
		}
		return true
	}
	return false
}

func (t *Tween) start() {
	t.started = true
	t.from = make([]float64, len(t.props))
	for i, prop := range t.props {
		t.from[i] = prop.Get()
	}
	if t.cfg.OnStart != nil {
		t.cfg.OnStart()
	}
}

// Cancel implements Playable
func (t *Tween) Cancel() {
	if t.completed {
		return
	}
	t.cancelled = true
}

// Done implements Playable
func (t *Tween) Done() bool {
	return t.completed || t.cancelled
}

// Duration implements Playable
func (t *Tween) Duration() float64 {
	return t.cfg.Delay + t.cfg.Duration
}

// Progress returns linear progress in [0, 1]
func (t *Tween) Progress() float64 {
	return t.progress
}

// Started reports whether the delay has elapsed and start values were captured
func (t *Tween) Started() bool {
	return t.started
}

// Completed reports whether the tween reached progress 1
func (t *Tween) Completed() bool {
	return t.completed
}

// Cancelled reports whether Cancel was called before completion
func (t *Tween) Cancelled() bool {
	return t.cancelled
}
