package ecs

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// NoEntity is the zero EntityID; it never refers to a star
const NoEntity EntityID = 0

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position   map[EntityID]Position
	Velocity   map[EntityID]Velocity
	Appearance map[EntityID]Appearance
	Scale      map[EntityID]Scale

	// Tags
	IsStar map[EntityID]struct{}

	// order keeps creation order so iteration is deterministic
	order []EntityID
	index map[EntityID]int
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Position:   make(map[EntityID]Position),
		Velocity:   make(map[EntityID]Velocity),
		Appearance: make(map[EntityID]Appearance),
		Scale:      make(map[EntityID]Scale),
		IsStar:     make(map[EntityID]struct{}),
		index:      make(map[EntityID]int),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Appearance, id)
	delete(w.Scale, id)
	delete(w.IsStar, id)

	if i, ok := w.index[id]; ok {
		w.order = append(w.order[:i], w.order[i+1:]...)
		delete(w.index, id)
		for j := i; j < len(w.order); j++ {
			w.index[w.order[j]] = j
		}
	}
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// CreateStar creates a star entity with scale 1
func (w *World) CreateStar(pos Position, vel Velocity, look Appearance) EntityID {
	id := w.NewEntity()

	look.Intensity = look.Emissive
	w.Position[id] = pos
	w.Velocity[id] = vel
	w.Appearance[id] = look
	w.Scale[id] = 1
	w.IsStar[id] = struct{}{}

	w.index[id] = len(w.order)
	w.order = append(w.order, id)
	return id
}

// Stars returns star IDs in creation order.
// The slice is owned by the world; do not modify it.
func (w *World) Stars() []EntityID {
	return w.order
}

// CountStars returns the number of live stars
func (w *World) CountStars() int {
	return len(w.IsStar)
}

// SetScale writes a star's scale. Returns false if the star no longer exists.
func (w *World) SetScale(id EntityID, s float64) bool {
	if !w.Exists(id) {
		return false
	}
	w.Scale[id] = Scale(s)
	return true
}

// GetScale returns a star's scale, or 1 for a missing star
func (w *World) GetScale(id EntityID) float64 {
	s, ok := w.Scale[id]
	if !ok {
		return 1
	}
	return float64(s)
}
