package entity

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func TestDefaultHome_Forward(t *testing.T) {
	home := DefaultHome()

	f := home.Forward()
	assert.InDelta(t, 0, f.X, 1e-12)
	assert.InDelta(t, 0, f.Y, 1e-12)
	assert.InDelta(t, -1, f.Z, 1e-12)
}

func TestCamera_UpdateProjection(t *testing.T) {
	cam := NewCamera(DefaultHome(), 90, 1, 0.1, 1000)

	// tan(45deg) = 1
	assert.InDelta(t, 1.0, cam.FocalScale(), 1e-9)

	cam.FOV = 60
	assert.InDelta(t, 1.0, cam.FocalScale(), 1e-9, "cache only changes on UpdateProjection")
	cam.UpdateProjection()
	assert.InDelta(t, 1/math.Tan(math.Pi/6), cam.FocalScale(), 1e-9)
}

func TestCamera_SetFOV_Clamps(t *testing.T) {
	cam := NewCamera(DefaultHome(), 85, 1, 0.1, 1000)

	cam.SetFOV(10)
	assert.Equal(t, FOVMin, cam.FOV)

	cam.SetFOV(500)
	assert.Equal(t, FOVMax, cam.FOV)

	cam.SetFOV(120)
	assert.Equal(t, 120.0, cam.FOV)
}

func TestCamera_SetAspect(t *testing.T) {
	cam := NewCamera(DefaultHome(), 85, 1, 0.1, 1000)

	cam.SetAspect(1920, 1080)
	assert.InDelta(t, 16.0/9.0, cam.Aspect, 1e-9)

	cam.SetAspect(0, 100)
	assert.InDelta(t, 16.0/9.0, cam.Aspect, 1e-9, "invalid size is ignored")
}

func TestCamera_Basis(t *testing.T) {
	cam := NewCamera(DefaultHome(), 85, 1, 0.1, 1000)

	right, up, forward := cam.Basis()
	assert.InDelta(t, 1, right.X, 1e-9)
	assert.InDelta(t, 1, up.Y, 1e-9)
	assert.InDelta(t, -1, forward.Z, 1e-9)

	assert.InDelta(t, 0, right.Dot(up), 1e-9)
	assert.InDelta(t, 0, right.Dot(forward), 1e-9)
	assert.InDelta(t, 0, up.Dot(forward), 1e-9)
}

func TestCamera_Basis_LookingStraightUp(t *testing.T) {
	cam := NewCamera(DefaultHome(), 85, 1, 0.1, 1000)
	cam.LookAt(cam.Position.Add(r3.Vector{Y: 10}))

	right, up, forward := cam.Basis()
	assert.InDelta(t, 1, right.Norm(), 1e-9)
	assert.InDelta(t, 1, up.Norm(), 1e-9)
	assert.InDelta(t, 1, forward.Y, 1e-9)
}

func TestCamera_Forward_Degenerate(t *testing.T) {
	cam := NewCamera(DefaultHome(), 85, 1, 0.1, 1000)
	cam.LookAt(cam.Position)

	assert.Equal(t, r3.Vector{X: 0, Y: 0, Z: -1}, cam.Forward())
}
