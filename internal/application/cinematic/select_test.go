package cinematic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/starfield/internal/domain/entity"
	"github.com/younwookim/starfield/internal/ecs"
)

func TestCandidates_ExactFilter(t *testing.T) {
	w := ecs.NewWorld()
	ecs.GenerateStars(w, rand.New(rand.NewSource(1)), ecs.StarFieldConfig{
		Count: 3600, Radius: 500, SizeMin: 0.4, SizeMax: 0.7, VelocityMin: -0.01, VelocityMax: 0.01,
	})
	home := entity.DefaultHome()
	p := DefaultParams()

	ids := Candidates(w, home, p)
	require.NotEmpty(t, ids)

	in := make(map[ecs.EntityID]bool, len(ids))
	for _, id := range ids {
		in[id] = true
	}

	maxAngle := p.GoFrontAngleDeg * math.Pi / 180
	for _, id := range w.Stars() {
		to := w.Position[id].Sub(home.Position)
		dist := to.Norm()
		angle := math.Acos(to.Dot(r3.Vector{X: 0, Y: 0, Z: -1}) / dist)
		want := dist > p.MinGoDist && angle < maxAngle

		assert.Equal(t, want, in[id], "star %d dist=%.2f angle=%.4f", id, dist, angle)
	}
}

func TestIsCandidate(t *testing.T) {
	home := entity.DefaultHome()
	p := DefaultParams()

	tests := []struct {
		name string
		pos  r3.Vector
		want bool
	}{
		{"straight ahead", r3.Vector{X: 0, Y: 0, Z: -100}, true},
		{"too close", r3.Vector{X: 0, Y: 0, Z: -10}, false},
		{"at min distance", r3.Vector{X: 0, Y: 0, Z: -20}, false},
		{"behind", r3.Vector{X: 0, Y: 0, Z: 200}, false},
		{"wide angle", r3.Vector{X: 300, Y: 0, Z: 0}, false},
		{"inside cone", r3.Vector{X: 100, Y: 50, Z: -200}, true},
		{"at home", home.Position, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCandidate(tt.pos, home, p))
		})
	}
}

func TestSelectTarget(t *testing.T) {
	w := ecs.NewWorld()
	a := w.CreateStar(r3.Vector{X: 0, Y: 0, Z: -100}, r3.Vector{}, ecs.Appearance{})
	w.CreateStar(r3.Vector{X: 0, Y: 0, Z: 100}, r3.Vector{}, ecs.Appearance{})
	b := w.CreateStar(r3.Vector{X: 10, Y: 0, Z: -200}, r3.Vector{}, ecs.Appearance{})

	t.Run("deterministic for a seed", func(t *testing.T) {
		t1, ok1 := SelectTarget(w, entity.DefaultHome(), DefaultParams(), rand.New(rand.NewSource(9)))
		t2, ok2 := SelectTarget(w, entity.DefaultHome(), DefaultParams(), rand.New(rand.NewSource(9)))
		require.True(t, ok1)
		require.True(t, ok2)
		assert.Equal(t, t1, t2)
		assert.Contains(t, []ecs.EntityID{a, b}, t1.ID)
		assert.Equal(t, w.Position[t1.ID], t1.Position)
	})

	t.Run("no candidates", func(t *testing.T) {
		empty := ecs.NewWorld()
		empty.CreateStar(r3.Vector{X: 0, Y: 0, Z: 100}, r3.Vector{}, ecs.Appearance{})
		_, ok := SelectTarget(empty, entity.DefaultHome(), DefaultParams(), rand.New(rand.NewSource(1)))
		assert.False(t, ok)
	})
}

func TestApproachPoint(t *testing.T) {
	cam := r3.Vector{X: 0, Y: 0, Z: 30}

	mid := ApproachPoint(cam, r3.Vector{X: 0, Y: 0, Z: -100}, 3)
	assert.InDelta(t, -97, mid.Z, 1e-9)

	off := r3.Vector{X: 40, Y: 0, Z: 0}
	mid = ApproachPoint(cam, off, 3)
	assert.InDelta(t, 3, off.Sub(mid).Norm(), 1e-9)

	assert.Equal(t, cam, ApproachPoint(cam, cam, 3), "degenerate direction")
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(*Params) {}, false},
		{"negative distance", func(p *Params) { p.MinGoDist = -1 }, true},
		{"zero angle", func(p *Params) { p.GoFrontAngleDeg = 0 }, true},
		{"spawn over one", func(p *Params) { p.RevertSpawnAt = 1.5 }, true},
		{"negative spawn", func(p *Params) { p.MoveSpawnAt = -0.1 }, true},
		{"negative approach", func(p *Params) { p.ApproachDistance = -3 }, true},
		{"fov target over max", func(p *Params) { p.FOVTarget = 180 }, true},
		{"fov original under min", func(p *Params) { p.FOVOriginal = 10 }, true},
		{"bloom target over max", func(p *Params) { p.BloomTarget = 21 }, true},
		{"negative bloom", func(p *Params) { p.BloomInit = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
