package cinematic

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/younwookim/starfield/internal/domain/entity"
	"github.com/younwookim/starfield/internal/ecs"
)

// Target is the star a session flies to. Position is captured at
// selection time; the star itself is only referenced by ID.
type Target struct {
	ID       ecs.EntityID
	Position r3.Vector
}

// IsCandidate reports whether a star at pos can be flown to from the
// home pose: farther than MinGoDist and within GoFrontAngleDeg of the
// home forward direction.
func IsCandidate(pos r3.Vector, home entity.HomePose, p Params) bool {
	to := pos.Sub(home.Position)
	dist := to.Norm()
	if dist <= p.MinGoDist || dist == 0 {
		return false
	}
	cos := to.Mul(1 / dist).Dot(home.Forward())
	angle := math.Acos(entity.Clamp(cos, -1, 1))
	return angle < p.GoFrontAngleDeg*math.Pi/180
}

// Candidates returns the stars eligible as targets, in creation order.
// Selection always uses the home pose, never the current camera.
func Candidates(w *ecs.World, home entity.HomePose, p Params) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Stars() {
		if IsCandidate(w.Position[id], home, p) {
			out = append(out, id)
		}
	}
	return out
}

// SelectTarget picks a candidate uniformly with rng
func SelectTarget(w *ecs.World, home entity.HomePose, p Params, rng *rand.Rand) (Target, bool) {
	ids := Candidates(w, home, p)
	if len(ids) == 0 {
		return Target{}, false
	}
	id := ids[rng.Intn(len(ids))]
	return Target{ID: id, Position: w.Position[id]}, true
}

// ApproachPoint returns the point dist units short of target on the line
// from cam to target.
func ApproachPoint(cam, target r3.Vector, dist float64) r3.Vector {
	d := target.Sub(cam)
	if d.Norm2() == 0 {
		return target
	}
	return target.Sub(d.Normalize().Mul(dist))
}
