package entity

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *SceneState {
	home := DefaultHome()
	return NewSceneState(home, NewCamera(home, 85, 4.0/3.0, 0.1, 1000), 0.25)
}

func TestNewSceneState(t *testing.T) {
	s := newTestState()

	require.NotNil(t, s)
	assert.Equal(t, Black, s.Background)
	assert.False(t, s.Whiteout)
	assert.Equal(t, 0.25, s.Bloom)
	assert.True(t, s.AtHome(1e-9))
}

func TestSceneState_SetBloom(t *testing.T) {
	s := newTestState()

	s.SetBloom(-1)
	assert.Equal(t, BloomMin, s.Bloom)

	s.SetBloom(50)
	assert.Equal(t, BloomMax, s.Bloom)

	s.SetBloom(10)
	assert.Equal(t, 10.0, s.Bloom)
}

func TestSceneState_Whiteout(t *testing.T) {
	s := newTestState()

	s.EnterWhiteout()
	assert.True(t, s.Whiteout)
	assert.Equal(t, White, s.Background)

	s.Background = Gray(0)
	s.ClearWhiteout()
	assert.False(t, s.Whiteout)
	assert.Equal(t, Black, s.Background, "clearing whiteout keeps the faded background")
}

func TestSceneState_AtHome(t *testing.T) {
	s := newTestState()

	s.Camera.Position = s.Camera.Position.Add(r3.Vector{X: 1})
	assert.False(t, s.AtHome(0.5))
	assert.True(t, s.AtHome(1.5))
}
