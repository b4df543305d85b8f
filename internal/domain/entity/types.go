package entity

import "image/color"

// Color is a linear RGB color with components in [0, 1]
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Gray returns the color (v, v, v)
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Scale multiplies every component by f
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f}
}

// RGBA converts to an 8-bit color, clamping out-of-range components
func (c Color) RGBA(alpha float64) color.RGBA {
	return color.RGBA{
		R: to8(c.R * alpha),
		G: to8(c.G * alpha),
		B: to8(c.B * alpha),
		A: to8(alpha),
	}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
