// Package tween provides poll-based interpolations advanced by an external
// frame tick: tweens, timelines and an Animator that owns them.
//
// Nothing in this package uses timers or goroutines. Progress only moves
// when Update is called, so playback is deterministic under a synthetic clock.
package tween

import (
	"errors"
	"fmt"
	"math"
)

// Easing maps linear progress t ∈ [0, 1] to eased progress ∈ [0, 1].
type Easing func(t float64) float64

// ErrUnknownEase is returned by ParseEase for unrecognized names
var ErrUnknownEase = errors.New("unknown ease")

// Linear returns t unchanged
func Linear(t float64) float64 {
	return t
}

// InQuad starts slow and accelerates: t²
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad starts fast and decelerates: 1 - (1-t)²
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad accelerates then decelerates
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// InCubic: t³
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic: 1 - (1-t)³
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic
//
//	t < 0.5: 4t³
//	t >= 0.5: 1 - (-2t + 2)³ / 2
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutExpo: 1 - 2^(-10t), pinned to 1 at the end
func OutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// InOutSine: -(cos(πt) - 1) / 2
func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// DefaultEase is applied when a tween has no ease set
var DefaultEase Easing = OutQuad

var easeNames = map[string]Easing{
	"none":         Linear,
	"linear":       Linear,
	"power1.in":    InQuad,
	"power1.out":   OutQuad,
	"power1.inOut": InOutQuad,
	"power2.in":    InCubic,
	"power2.out":   OutCubic,
	"power2.inOut": InOutCubic,
	"expo.out":     OutExpo,
	"sine.inOut":   InOutSine,
}

// ParseEase resolves an ease by name ("power1.in", "sine.inOut", ...).
// An empty name resolves to DefaultEase.
func ParseEase(name string) (Easing, error) {
	if name == "" {
		return DefaultEase, nil
	}
	e, ok := easeNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return e, nil
}

// Lerp interpolates between a and b: t=0 returns a, t=1 returns b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
