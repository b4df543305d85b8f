// Package audio plays short synthesized cues for cinematic events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue identifies a sound
type Cue int

const (
	CueLaunch   Cue = iota // target selected
	CueWhiteout            // screen turns white
	CueReturned            // camera back home
)

type tone struct {
	freq     float64
	duration time.Duration
	gain     float64 // effects.Gain: 0 is unchanged, -1 is silent
}

var tones = map[Cue]tone{
	CueLaunch:   {freq: 660, duration: 80 * time.Millisecond, gain: -0.7},
	CueWhiteout: {freq: 880, duration: 400 * time.Millisecond, gain: -0.6},
	CueReturned: {freq: 330, duration: 250 * time.Millisecond, gain: -0.7},
}

// Duration returns how long a cue plays
func (c Cue) Duration() time.Duration {
	return tones[c].duration
}

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueWhiteout:
		return "whiteout"
	case CueReturned:
		return "returned"
	default:
		return "unknown"
	}
}

// Tone builds the finite streamer for a cue
func Tone(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	t, ok := tones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	sine, err := generators.SineTone(sr, t.freq)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s tone: %w", c, err)
	}
	return &effects.Gain{
		Streamer: beep.Take(sr.N(t.duration), sine),
		Gain:     t.gain,
	}, nil
}

// CuePlayer mixes cues onto the system speaker. Until Init succeeds,
// Play does nothing.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates a silent player
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker
func (p *CuePlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a cue without blocking
func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := Tone(c, sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all cues and releases the speaker
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
