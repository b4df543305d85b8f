package ecs

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Position)
	assert.NotNil(t, w.Velocity)
	assert.NotNil(t, w.IsStar)
	assert.Empty(t, w.Stars())
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.CreateStar(r3.Vector{X: 1}, r3.Vector{}, Appearance{})
	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestCreateStar(t *testing.T) {
	w := NewWorld()

	id := w.CreateStar(r3.Vector{X: 1, Y: 2, Z: 3}, r3.Vector{X: 0.01}, Appearance{Size: 0.5, Emissive: 0.8})

	require.True(t, w.Exists(id))
	assert.Equal(t, r3.Vector{X: 1, Y: 2, Z: 3}, w.Position[id])
	assert.Equal(t, 1.0, w.GetScale(id))
	assert.Equal(t, 0.8, w.Appearance[id].Intensity, "intensity starts at emissive")
	assert.Equal(t, []EntityID{id}, w.Stars())
	assert.Equal(t, 1, w.CountStars())
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	a := w.CreateStar(r3.Vector{X: 1}, r3.Vector{}, Appearance{})
	b := w.CreateStar(r3.Vector{X: 2}, r3.Vector{}, Appearance{})
	c := w.CreateStar(r3.Vector{X: 3}, r3.Vector{}, Appearance{})

	w.DestroyEntity(b)

	assert.False(t, w.Exists(b))
	_, hasVel := w.Velocity[b]
	assert.False(t, hasVel)
	_, isStar := w.IsStar[b]
	assert.False(t, isStar)

	assert.Equal(t, []EntityID{a, c}, w.Stars())

	// Order stays compacted after a later removal
	w.DestroyEntity(a)
	assert.Equal(t, []EntityID{c}, w.Stars())
}

func TestExists(t *testing.T) {
	w := NewWorld()
	id := w.NewEntity()

	assert.False(t, w.Exists(id), "Entity without Position should not exist")
	assert.False(t, w.Exists(NoEntity))

	w.Position[id] = r3.Vector{}
	assert.True(t, w.Exists(id), "Entity with Position should exist")
}

func TestSetScale_MissingEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateStar(r3.Vector{}, r3.Vector{}, Appearance{})

	assert.True(t, w.SetScale(id, 5))
	assert.Equal(t, 5.0, w.GetScale(id))

	w.DestroyEntity(id)
	assert.False(t, w.SetScale(id, 3), "writes to a destroyed star are dropped")
	_, has := w.Scale[id]
	assert.False(t, has)
	assert.Equal(t, 1.0, w.GetScale(id))
}
