// Package cinematic drives the fly-to-star sequence and its inverse.
//
// The Controller is an explicit state machine (see state.Phase). Every
// phase is a tween or timeline played on a shared tween.Animator under
// the Tag tag; transitions happen in completion callbacks or progress
// triggers. Writes are guarded by a generation token so a superseded
// session can never touch SceneState again.
package cinematic

import (
	"fmt"

	"github.com/younwookim/starfield/internal/application/tween"
	"github.com/younwookim/starfield/internal/domain/entity"
)

// Tag is the animator tag of every cinematic playable
const Tag = "cinematic"

// Params holds the tunable constants of the sequence. Times are seconds.
type Params struct {
	MinGoDist       float64
	GoFrontAngleDeg float64

	FOVOriginal float64
	FOVTarget   float64
	FOVTime     float64

	CamMoveTime   float64
	CamRotateTime float64
	CamRotateEase tween.Easing
	Ease          tween.Easing // FOV, move and bloom tweens

	BloomInit    float64
	BloomTarget  float64
	BloomTime    float64
	EnlargeScale float64

	FadeToBlackTime float64
	FadeEase        tween.Easing

	// Progress fractions at which dependent phases spawn
	MoveSpawnAt   float64
	RevertSpawnAt float64

	// Distance short of the target where the camera stops
	ApproachDistance float64
}

// DefaultParams returns the stock sequence
func DefaultParams() Params {
	return Params{
		MinGoDist:        50,
		GoFrontAngleDeg:  70,
		FOVOriginal:      85,
		FOVTarget:        170,
		FOVTime:          1.2,
		CamMoveTime:      2.4,
		CamRotateTime:    1.5,
		CamRotateEase:    tween.InQuad,
		Ease:             tween.DefaultEase,
		BloomInit:        0.25,
		BloomTarget:      10,
		BloomTime:        2.5,
		EnlargeScale:     5,
		FadeToBlackTime:  2.2,
		FadeEase:         tween.InOutQuad,
		MoveSpawnAt:      0,
		RevertSpawnAt:    0.8,
		ApproachDistance: 3,
	}
}

// Validate rejects parameter sets the sequence cannot run with
func (p Params) Validate() error {
	if p.MinGoDist < 0 {
		return fmt.Errorf("minGoDist must be >= 0, got %v", p.MinGoDist)
	}
	if p.GoFrontAngleDeg <= 0 || p.GoFrontAngleDeg > 180 {
		return fmt.Errorf("goFrontAngleDeg must be in (0, 180], got %v", p.GoFrontAngleDeg)
	}
	for name, v := range map[string]float64{
		"moveSpawnAt":   p.MoveSpawnAt,
		"revertSpawnAt": p.RevertSpawnAt,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, v)
		}
	}
	if p.ApproachDistance < 0 {
		return fmt.Errorf("approachDistance must be >= 0, got %v", p.ApproachDistance)
	}
	for name, v := range map[string]float64{
		"fovOriginal": p.FOVOriginal,
		"fovTarget":   p.FOVTarget,
	} {
		if v < entity.FOVMin || v > entity.FOVMax {
			return fmt.Errorf("%s must be in [%v, %v], got %v", name, entity.FOVMin, entity.FOVMax, v)
		}
	}
	for name, v := range map[string]float64{
		"bloomInit":   p.BloomInit,
		"bloomTarget": p.BloomTarget,
	} {
		if v < entity.BloomMin || v > entity.BloomMax {
			return fmt.Errorf("%s must be in [%v, %v], got %v", name, entity.BloomMin, entity.BloomMax, v)
		}
	}
	return nil
}

func (p Params) withDefaults() Params {
	if p.CamRotateEase == nil {
		p.CamRotateEase = tween.InQuad
	}
	if p.Ease == nil {
		p.Ease = tween.DefaultEase
	}
	if p.FadeEase == nil {
		p.FadeEase = tween.InOutQuad
	}
	return p
}
