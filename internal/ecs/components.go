package ecs

import (
	"github.com/golang/geo/r3"
	"github.com/younwookim/starfield/internal/domain/entity"
)

// Position is a star's world-space position
type Position = r3.Vector

// Velocity is added to Position once per frame tick (not per second).
// It is assigned at creation and never changes.
type Velocity = r3.Vector

// Appearance holds the visual attributes of a star
type Appearance struct {
	Color    entity.Color
	Size     float64 // base point size (world units)
	Emissive float64 // base emissive power
	// Intensity is Emissive perturbed by flicker, rewritten every tick
	Intensity float64
}

// Scale is the uniform scale multiplier of a star.
// 1.0 at creation; only the cinematic changes it.
type Scale float64
