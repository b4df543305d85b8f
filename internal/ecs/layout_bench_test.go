package ecs

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
)

const benchStars = 3600

func benchWorld() *World {
	w := NewWorld()
	GenerateStars(w, rand.New(rand.NewSource(1)), StarFieldConfig{
		Count: benchStars, Radius: 500, SizeMin: 0.4, SizeMax: 0.7, VelocityMin: -0.01, VelocityMax: 0.01,
	})
	return w
}

// starAoS is the row oriented baseline for the component maps
type starAoS struct {
	Pos, Vel  r3.Vector
	Emissive  float64
	Intensity float64
}

// Case 1: drift, position += velocity

func BenchmarkDrift_World(b *testing.B) {
	w := benchWorld()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		UpdateDrift(w)
	}
}

func BenchmarkDrift_AoS(b *testing.B) {
	w := benchWorld()
	stars := make([]starAoS, 0, benchStars)
	for _, id := range w.Stars() {
		stars = append(stars, starAoS{Pos: w.Position[id], Vel: w.Velocity[id]})
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		for i := range stars {
			stars[i].Pos = stars[i].Pos.Add(stars[i].Vel)
		}
	}
}

// Case 2: flicker, one sin per star

func BenchmarkFlicker_World(b *testing.B) {
	w := benchWorld()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		UpdateFlicker(w, float64(n)*16, 0.001, 0.001)
	}
}

func BenchmarkFlicker_AoS(b *testing.B) {
	w := benchWorld()
	stars := make([]starAoS, 0, benchStars)
	for _, id := range w.Stars() {
		stars = append(stars, starAoS{Emissive: w.Appearance[id].Emissive})
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		now := float64(n) * 16
		for i := range stars {
			stars[i].Intensity = FlickerIntensity(stars[i].Emissive, i, now, 0.001, 0.001)
		}
	}
}

// Case 3: candidate style filter, stars in front of the origin

func BenchmarkFilter_World(b *testing.B) {
	w := benchWorld()
	b.ResetTimer()
	var count int
	for n := 0; n < b.N; n++ {
		count = 0
		for _, id := range w.Stars() {
			if w.Position[id].Z < 0 {
				count++
			}
		}
	}
	_ = count
}

func BenchmarkGenerateStars(b *testing.B) {
	for n := 0; n < b.N; n++ {
		benchWorld()
	}
}
