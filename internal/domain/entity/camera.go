package entity

import (
	"math"

	"github.com/golang/geo/r3"
)

// FOV bounds (degrees) for externally edited values
const (
	FOVMin = 30.0
	FOVMax = 170.0
)

// HomePose is the canonical camera pose. It is the origin of every
// cinematic and the fixed reference used for target selection.
type HomePose struct {
	Position r3.Vector
	Look     r3.Vector
}

// DefaultHome returns the pose at (0,0,30) looking at the origin
func DefaultHome() HomePose {
	return HomePose{
		Position: r3.Vector{X: 0, Y: 0, Z: 30},
		Look:     r3.Vector{},
	}
}

// Forward returns the unit view direction of the pose
func (h HomePose) Forward() r3.Vector {
	return direction(h.Position, h.Look)
}

// Camera is a perspective camera oriented by a look-at point.
type Camera struct {
	Position r3.Vector
	Look     r3.Vector
	Up       r3.Vector
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64

	focal float64 // cached 1/tan(fov/2), see UpdateProjection
}

// NewCamera creates a camera at the home pose
func NewCamera(home HomePose, fov, aspect, near, far float64) Camera {
	c := Camera{
		Position: home.Position,
		Look:     home.Look,
		Up:       r3.Vector{X: 0, Y: 1, Z: 0},
		FOV:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjection()
	return c
}

// Forward returns the unit direction from the camera to its look point
func (c *Camera) Forward() r3.Vector {
	return direction(c.Position, c.Look)
}

// LookAt aims the camera at p
func (c *Camera) LookAt(p r3.Vector) {
	c.Look = p
}

// SetFOV sets the field of view clamped to [FOVMin, FOVMax] and
// recomputes the projection.
func (c *Camera) SetFOV(deg float64) {
	c.FOV = Clamp(deg, FOVMin, FOVMax)
	c.UpdateProjection()
}

// SetAspect updates the aspect ratio from a viewport size
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
	c.UpdateProjection()
}

// UpdateProjection recomputes the cached focal scale from FOV.
// Must be called after FOV is written directly.
func (c *Camera) UpdateProjection() {
	half := c.FOV * math.Pi / 360
	t := math.Tan(half)
	if t <= 0 || math.IsInf(t, 0) || math.IsNaN(t) {
		c.focal = 0
		return
	}
	c.focal = 1 / t
}

// FocalScale returns 1/tan(fov/2) as of the last UpdateProjection
func (c *Camera) FocalScale() float64 {
	return c.focal
}

// Basis returns the orthonormal right, up and forward vectors
func (c *Camera) Basis() (right, up, forward r3.Vector) {
	forward = c.Forward()
	worldUp := c.Up
	if worldUp.Norm2() == 0 {
		worldUp = r3.Vector{X: 0, Y: 1, Z: 0}
	}
	right = forward.Cross(worldUp)
	if right.Norm2() < 1e-12 {
		// Looking straight up or down
		right = r3.Vector{X: 1, Y: 0, Z: 0}
	}
	right = right.Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

func direction(from, to r3.Vector) r3.Vector {
	d := to.Sub(from)
	if d.Norm2() == 0 {
		return r3.Vector{X: 0, Y: 0, Z: -1}
	}
	return d.Normalize()
}
