// Package render draws scene snapshots. The core never calls a backend
// directly; it builds a Frame and hands it over once per tick.
package render

import (
	"github.com/golang/geo/r3"
	"github.com/younwookim/starfield/internal/domain/entity"
	"github.com/younwookim/starfield/internal/infrastructure/config"
)

// Star is the render view of one star
type Star struct {
	Position  r3.Vector
	Color     entity.Color
	Size      float64
	Intensity float64
	Scale     float64
}

// Button is an on-screen control drawn by the HUD
type Button struct {
	Label string
	Rect  config.Rect
	Hot   bool // under the cursor
}

// HUD is the overlay text and controls
type HUD struct {
	Visible bool
	Phase   string
	Lines   []string
	Buttons []Button
}

// Frame is an immutable snapshot of everything a backend draws
type Frame struct {
	Camera     entity.Camera
	Background entity.Color
	Bloom      float64
	Whiteout   bool
	Stars      []Star
	HUD        HUD
}
