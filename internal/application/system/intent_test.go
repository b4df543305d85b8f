package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoToStarIntent(t *testing.T) {
	// Test that it implements Intent interface
	var i Intent = GoToStarIntent{}
	i.isIntent() // Should not panic

	assert.IsType(t, GoToStarIntent{}, i)
}

func TestReturnIntent(t *testing.T) {
	var i Intent = ReturnIntent{}
	i.isIntent()

	assert.IsType(t, ReturnIntent{}, i)
}

func TestTuneIntent(t *testing.T) {
	bloom := 3.5
	intent := TuneIntent{Bloom: &bloom}

	var i Intent = intent
	i.isIntent()

	assert.False(t, intent.Empty())
	assert.Equal(t, 3.5, *intent.Bloom)
	assert.Nil(t, intent.FOV)
	assert.True(t, TuneIntent{}.Empty())
}
