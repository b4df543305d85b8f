package ecs

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/younwookim/starfield/internal/domain/entity"
)

// StarFieldConfig holds star generation parameters.
type StarFieldConfig struct {
	Count       int
	Radius      float64 // bounding sphere radius
	SizeMin     float64
	SizeMax     float64
	VelocityMin float64 // per axis, per frame
	VelocityMax float64
}

// Pastel color ranges (min, span) per channel
const (
	colorRMin, colorRSpan = 0.65, 0.35
	colorGMin, colorGSpan = 0.65, 0.35
	colorBMin, colorBSpan = 0.45, 0.55

	emissiveMin, emissiveSpan = 0.4, 0.8
)

// GenerateStars creates cfg.Count stars uniformly distributed by volume
// inside a sphere of cfg.Radius centered on the origin.
func GenerateStars(w *World, rng *rand.Rand, cfg StarFieldConfig) []EntityID {
	ids := make([]EntityID, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		pos := SampleInSphere(rng, cfg.Radius)

		look := Appearance{
			Color: entity.Color{
				R: rng.Float64()*colorRSpan + colorRMin,
				G: rng.Float64()*colorGSpan + colorGMin,
				B: rng.Float64()*colorBSpan + colorBMin,
			},
			Size:     rng.Float64()*(cfg.SizeMax-cfg.SizeMin) + cfg.SizeMin,
			Emissive: rng.Float64()*emissiveSpan + emissiveMin,
		}

		vel := Velocity{
			X: uniform(rng, cfg.VelocityMin, cfg.VelocityMax),
			Y: uniform(rng, cfg.VelocityMin, cfg.VelocityMax),
			Z: uniform(rng, cfg.VelocityMin, cfg.VelocityMax),
		}

		ids = append(ids, w.CreateStar(pos, vel, look))
	}
	return ids
}

// SampleInSphere returns a point uniformly distributed by volume in a
// sphere of the given radius. The cube root on the radius keeps density
// proportional to r² instead of clustering at the center.
func SampleInSphere(rng *rand.Rand, radius float64) r3.Vector {
	r := radius * math.Cbrt(rng.Float64())
	cosTheta := rng.Float64()*2 - 1
	theta := math.Acos(cosTheta)
	phi := rng.Float64() * 2 * math.Pi

	return r3.Vector{
		X: r * math.Sin(theta) * math.Cos(phi),
		Y: r * math.Sin(theta) * math.Sin(phi),
		Z: r * math.Cos(theta),
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}

// UpdateDrift adds each star's velocity to its position.
// One call per rendered frame; the increment is not scaled by elapsed time.
func UpdateDrift(w *World) {
	for _, id := range w.order {
		pos, ok := w.Position[id]
		if !ok {
			continue
		}
		w.Position[id] = pos.Add(w.Velocity[id])
	}
}

// FlickerIntensity returns emissive + amount*sin(nowMillis*freq + index).
// Deterministic for a given index and timestamp.
func FlickerIntensity(emissive float64, index int, nowMillis, amount, freq float64) float64 {
	return emissive + amount*math.Sin(nowMillis*freq+float64(index))
}

// UpdateFlicker rewrites every star's intensity for the given wall-clock time
func UpdateFlicker(w *World, nowMillis, amount, freq float64) {
	for i, id := range w.order {
		look, ok := w.Appearance[id]
		if !ok {
			continue
		}
		look.Intensity = FlickerIntensity(look.Emissive, i, nowMillis, amount, freq)
		w.Appearance[id] = look
	}
}

