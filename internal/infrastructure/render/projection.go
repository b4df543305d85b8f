package render

import (
	"math"
	"sort"

	"github.com/younwookim/starfield/internal/domain/entity"
)

// minRadius keeps distant stars visible as at least a sub-pixel dot
const minRadius = 0.5

// Sprite is a star projected to screen space
type Sprite struct {
	X, Y      float64 // pixels, origin top-left
	Radius    float64 // pixels
	Depth     float64 // distance along the view axis
	Color     entity.Color
	Intensity float64
}

// Project maps the frame's stars onto a w×h viewport with a perspective
// camera. Stars outside the clip range or off screen are culled. The
// result is sorted far to near.
func Project(f Frame, w, h int, pointSize float64) []Sprite {
	if w <= 0 || h <= 0 {
		return nil
	}
	cam := f.Camera
	right, up, forward := cam.Basis()
	focal := cam.FocalScale()
	if focal == 0 {
		return nil
	}
	aspect := float64(w) / float64(h)
	halfW, halfH := float64(w)/2, float64(h)/2

	sprites := make([]Sprite, 0, len(f.Stars))
	for _, s := range f.Stars {
		rel := s.Position.Sub(cam.Position)
		z := rel.Dot(forward)
		if z < cam.Near || z > cam.Far {
			continue
		}

		ndcX := rel.Dot(right) * focal / (z * aspect)
		ndcY := rel.Dot(up) * focal / z
		radius := s.Size * s.Scale * pointSize * focal * halfH / z

		x := (ndcX + 1) * halfW
		y := (1 - ndcY) * halfH
		if x+radius < 0 || x-radius > float64(w) || y+radius < 0 || y-radius > float64(h) {
			continue
		}

		sprites = append(sprites, Sprite{
			X:         x,
			Y:         y,
			Radius:    math.Max(radius, minRadius),
			Depth:     z,
			Color:     s.Color,
			Intensity: s.Intensity,
		})
	}

	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Depth > sprites[j].Depth
	})
	return sprites
}

// HaloRadius returns the glow radius for a sprite at the given bloom strength
func HaloRadius(radius, bloom float64) float64 {
	return radius * (1 + 0.6*bloom)
}

// HaloAlpha returns the glow opacity, capped so the core stays readable
func HaloAlpha(intensity, bloom float64) float64 {
	return entity.Clamp(0.06*bloom*intensity, 0, 0.6)
}
