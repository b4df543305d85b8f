package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every Validate error
var ErrInvalid = errors.New("invalid scene config")

// Ranges the camera and bloom clamp to at runtime
const (
	fovMin   = 30.0
	fovMax   = 170.0
	bloomMax = 20.0
)

// Default returns the stock scene
func Default() *SceneConfig {
	return &SceneConfig{
		Display: DisplayConfig{
			ScreenWidth:  960,
			ScreenHeight: 540,
			Scale:        1,
			Framerate:    60,
			Title:        "starfield",
		},
		Stars: StarsConfig{
			Count:       3600,
			Radius:      500,
			SizeMin:     0.4,
			SizeMax:     0.7,
			VelocityMin: -0.01,
			VelocityMax: 0.01,
			FlickerAmt:  0.001,
			FlickerFreq: 0.001,
		},
		Cinematic: CinematicConfig{
			MinGoDist:        50,
			GoFrontAngleDeg:  70,
			FOVOriginal:      85,
			FOVTarget:        170,
			FOVTime:          1.2,
			CamMoveTime:      2.4,
			CamRotateTime:    1.5,
			CamRotateEase:    "power1.in",
			DefaultEase:      "power1.out",
			BloomInit:        0.25,
			BloomTarget:      10,
			BloomTime:        2.5,
			EnlargeScale:     5,
			FadeToBlackTime:  2.2,
			FadeEase:         "power1.inOut",
			MoveSpawnAt:      0,
			RevertSpawnAt:    0.8,
			ApproachDistance: 3,
		},
		Render: RenderConfig{
			Style:     StylePoints,
			PointSize: 1.5,
			Near:      0.1,
			Far:       1000,
			HUD:       true,
		},
		UI: UIConfig{
			GoButton:     Rect{X: 16, Y: 16, W: 132, H: 28},
			ReturnButton: Rect{X: 16, Y: 52, W: 132, H: 28},
		},
	}
}

// Validate rejects values the scene cannot run with
func (c *SceneConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, d.ScreenWidth, d.ScreenHeight)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: scale must be > 0, got %d", ErrInvalid, d.Scale)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("%w: framerate must be > 0, got %d", ErrInvalid, d.Framerate)
	}

	s := c.Stars
	if s.Count <= 0 {
		return fmt.Errorf("%w: star count must be > 0, got %d", ErrInvalid, s.Count)
	}
	if s.Radius <= 0 {
		return fmt.Errorf("%w: star radius must be > 0, got %v", ErrInvalid, s.Radius)
	}
	if s.SizeMin < 0 || s.SizeMin > s.SizeMax {
		return fmt.Errorf("%w: star size range [%v, %v]", ErrInvalid, s.SizeMin, s.SizeMax)
	}
	if s.VelocityMin > s.VelocityMax {
		return fmt.Errorf("%w: velocity range [%v, %v]", ErrInvalid, s.VelocityMin, s.VelocityMax)
	}

	m := c.Cinematic
	for name, v := range map[string]float64{
		"moveSpawnAt":   m.MoveSpawnAt,
		"revertSpawnAt": m.RevertSpawnAt,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalid, name, v)
		}
	}
	for name, v := range map[string]float64{
		"fovTime":         m.FOVTime,
		"camMoveTime":     m.CamMoveTime,
		"camRotateTime":   m.CamRotateTime,
		"bloomTime":       m.BloomTime,
		"fadeToBlackTime": m.FadeToBlackTime,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalid, name, v)
		}
	}
	for name, v := range map[string]float64{
		"fovOriginal": m.FOVOriginal,
		"fovTarget":   m.FOVTarget,
	} {
		if v < fovMin || v > fovMax {
			return fmt.Errorf("%w: %s must be in [%v, %v], got %v", ErrInvalid, name, fovMin, fovMax, v)
		}
	}
	for name, v := range map[string]float64{
		"bloomInit":   m.BloomInit,
		"bloomTarget": m.BloomTarget,
	} {
		if v < 0 || v > bloomMax {
			return fmt.Errorf("%w: %s must be in [0, %v], got %v", ErrInvalid, name, bloomMax, v)
		}
	}

	r := c.Render
	if r.Style != StylePoints && r.Style != StyleSpheres {
		return fmt.Errorf("%w: unknown render style %q", ErrInvalid, r.Style)
	}
	if r.Near <= 0 || r.Far <= r.Near {
		return fmt.Errorf("%w: clip range [%v, %v]", ErrInvalid, r.Near, r.Far)
	}
	return nil
}
