package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTimeline(t *testing.T, tl *Timeline, dt float64) int {
	t.Helper()
	ticks := 0
	for !tl.Update(dt) {
		ticks++
		require.Less(t, ticks, 10000, "timeline never completed")
	}
	return ticks + 1
}

func TestTimeline_SequentialEntries(t *testing.T) {
	a, b := 0.0, 0.0
	var order []string

	tl := NewTimeline()
	tl.Then(New([]Prop{Float(&a, 1)}, Config{Duration: 0.5, OnComplete: func() { order = append(order, "a") }}))
	tl.Then(New([]Prop{Float(&b, 1)}, Config{
		Duration: 0.5,
		OnStart: func() {
			assert.Equal(t, 1.0, a, "b starts after a finished")
			order = append(order, "b-start")
		},
		OnComplete: func() { order = append(order, "b") },
	}))

	assert.InDelta(t, 1.0, tl.Duration(), 1e-12)
	runTimeline(t, tl, 0.1)

	assert.Equal(t, []string{"a", "b-start", "b"}, order)
	assert.Equal(t, 1.0, b)
}

func TestTimeline_Positions(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected float64 // start time of the second entry
	}{
		{"after previous end", After(0), 2},
		{"gap", After(0.5), 2.5},
		{"overlap", After(-1.2), 0.8},
		{"with previous", With(), 0},
		{"absolute", At(1.5), 1.5},
		{"clamped to zero", After(-10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := NewTimeline()
			tl.Then(New(nil, Config{Duration: 2}))
			tl.Add(New(nil, Config{Duration: 1}), tt.pos)

			assert.InDelta(t, tt.expected, tl.entries[1].start, 1e-12)
			assert.InDelta(t, max(2, tt.expected+1), tl.Duration(), 1e-12)
		})
	}
}

func TestTimeline_CarryOver(t *testing.T) {
	v := 0.0
	tl := NewTimeline()
	tl.Then(New(nil, Config{Duration: 0.3}))
	tl.Then(New([]Prop{Float(&v, 1)}, Config{Duration: 1, Ease: Linear}))

	// Clock 0.25 then 0.5: second entry starts at 0.3 and sees 0.2
	tl.Update(0.25)
	tl.Update(0.25)
	assert.InDelta(t, 0.2, v, 1e-9)
}

func TestTimeline_CallFiresInOrder(t *testing.T) {
	var order []string
	tl := NewTimeline()
	tl.Then(New(nil, Config{Duration: 0.2, OnComplete: func() { order = append(order, "first") }}))
	tl.Call(func() { order = append(order, "call") }, After(0))
	tl.Then(New(nil, Config{Duration: 0.2, OnComplete: func() { order = append(order, "last") }}))

	runTimeline(t, tl, 1.0/60)
	assert.Equal(t, []string{"first", "call", "last"}, order)
}

func TestTimeline_OnCompleteOnce(t *testing.T) {
	n := 0
	tl := NewTimeline()
	tl.Then(New(nil, Config{Duration: 0.1}))
	tl.OnComplete = func() { n++ }

	runTimeline(t, tl, 0.05)
	tl.Update(0.05)
	assert.Equal(t, 1, n)
	assert.True(t, tl.Done())
}

func TestTimeline_Cancel(t *testing.T) {
	v := 0.0
	completed := false
	inner := New([]Prop{Float(&v, 1)}, Config{Duration: 1})
	tl := NewTimeline()
	tl.Then(inner)
	tl.OnComplete = func() { completed = true }

	tl.Update(0.3)
	tl.Cancel()
	snapshot := v
	tl.Update(5)

	assert.True(t, inner.Cancelled())
	assert.Equal(t, snapshot, v)
	assert.False(t, completed)
}

func TestTimeline_Empty(t *testing.T) {
	n := 0
	tl := NewTimeline()
	tl.OnComplete = func() { n++ }
	assert.True(t, tl.Update(0))
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, tl.Len())
}
