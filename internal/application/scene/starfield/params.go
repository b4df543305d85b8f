package starfield

import (
	"fmt"

	"github.com/younwookim/starfield/internal/application/cinematic"
	"github.com/younwookim/starfield/internal/application/tween"
	"github.com/younwookim/starfield/internal/ecs"
	"github.com/younwookim/starfield/internal/infrastructure/config"
)

// ParamsFromConfig converts the cinematic section of a scene file
func ParamsFromConfig(c config.CinematicConfig) (cinematic.Params, error) {
	rotateEase, err := tween.ParseEase(c.CamRotateEase)
	if err != nil {
		return cinematic.Params{}, fmt.Errorf("camRotateEase: %w", err)
	}
	ease, err := tween.ParseEase(c.DefaultEase)
	if err != nil {
		return cinematic.Params{}, fmt.Errorf("defaultEase: %w", err)
	}
	fadeEase, err := tween.ParseEase(c.FadeEase)
	if err != nil {
		return cinematic.Params{}, fmt.Errorf("fadeEase: %w", err)
	}

	p := cinematic.Params{
		MinGoDist:        c.MinGoDist,
		GoFrontAngleDeg:  c.GoFrontAngleDeg,
		FOVOriginal:      c.FOVOriginal,
		FOVTarget:        c.FOVTarget,
		FOVTime:          c.FOVTime,
		CamMoveTime:      c.CamMoveTime,
		CamRotateTime:    c.CamRotateTime,
		CamRotateEase:    rotateEase,
		Ease:             ease,
		BloomInit:        c.BloomInit,
		BloomTarget:      c.BloomTarget,
		BloomTime:        c.BloomTime,
		EnlargeScale:     c.EnlargeScale,
		FadeToBlackTime:  c.FadeToBlackTime,
		FadeEase:         fadeEase,
		MoveSpawnAt:      c.MoveSpawnAt,
		RevertSpawnAt:    c.RevertSpawnAt,
		ApproachDistance: c.ApproachDistance,
	}
	if err := p.Validate(); err != nil {
		return cinematic.Params{}, fmt.Errorf("invalid cinematic params: %w", err)
	}
	return p, nil
}

// StarFieldFromConfig converts the stars section of a scene file
func StarFieldFromConfig(c config.StarsConfig) ecs.StarFieldConfig {
	return ecs.StarFieldConfig{
		Count:       c.Count,
		Radius:      c.Radius,
		SizeMin:     c.SizeMin,
		SizeMax:     c.SizeMax,
		VelocityMin: c.VelocityMin,
		VelocityMax: c.VelocityMax,
	}
}
