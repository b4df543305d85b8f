package tween

type anchor int

const (
	anchorPrevEnd anchor = iota
	anchorPrevStart
	anchorAbsolute
)

// Position places a timeline entry relative to the previously added one.
type Position struct {
	anchor anchor
	offset float64
}

// After places an entry at the previous entry's end plus offset.
// A negative offset overlaps the previous entry ("-=1.2").
func After(offset float64) Position {
	return Position{anchor: anchorPrevEnd, offset: offset}
}

// With starts an entry together with the previous one ("<")
func With() Position {
	return Position{anchor: anchorPrevStart}
}

// At places an entry at an absolute timeline time
func At(t float64) Position {
	return Position{anchor: anchorAbsolute, offset: t}
}

type entry struct {
	p        Playable
	start    float64
	begun    bool
	finished bool
}

// Timeline sequences playables on a shared clock.
type Timeline struct {
	entries []*entry
	clock   float64

	prevStart float64
	prevEnd   float64
	end       float64

	completed bool
	cancelled bool

	// OnComplete runs once when every entry has finished
	OnComplete func()
}

// NewTimeline creates an empty timeline
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Add places p on the timeline. Start times are fixed at Add time from
// the nominal durations of earlier entries.
func (tl *Timeline) Add(p Playable, pos Position) *Timeline {
	var start float64
	switch pos.anchor {
	case anchorPrevEnd:
		start = tl.prevEnd + pos.offset
	case anchorPrevStart:
		start = tl.prevStart + pos.offset
	case anchorAbsolute:
		start = pos.offset
	}
	if start < 0 {
		start = 0
	}

	tl.entries = append(tl.entries, &entry{p: p, start: start})
	tl.prevStart = start
	tl.prevEnd = start + p.Duration()
	if tl.prevEnd > tl.end {
		tl.end = tl.prevEnd
	}
	return tl
}

// Then appends p after the previous entry
func (tl *Timeline) Then(p Playable) *Timeline {
	return tl.Add(p, After(0))
}

// Call schedules fn as a zero-length entry
func (tl *Timeline) Call(fn func(), pos Position) *Timeline {
	return tl.Add(Call(fn), pos)
}

// Update implements Playable. Entries that begin inside this step are
// advanced only by the time since their start.
func (tl *Timeline) Update(dt float64) bool {
	if tl.completed || tl.cancelled {
		return true
	}
	if dt < 0 {
		dt = 0
	}
	tl.clock += dt

	pending := false
	for _, e := range tl.entries {
		if e.finished {
			continue
		}
		if tl.clock < e.start {
			pending = true
			continue
		}

		step := dt
		if !e.begun {
			e.begun = true
			step = tl.clock - e.start
		}
		if e.p.Update(step) {
			e.finished = true
		} else {
			pending = true
		}

		if tl.cancelled {
			return true
		}
	}

	if !pending {
		tl.completed = true
		if tl.OnComplete != nil {
			tl.OnComplete()
		}
	}
	return tl.completed
}

// Cancel implements Playable; cancels every unfinished entry
func (tl *Timeline) Cancel() {
	if tl.completed {
		return
	}
	tl.cancelled = true
	for _, e := range tl.entries {
		if !e.finished {
			e.p.Cancel()
		}
	}
}

// Done implements Playable
func (tl *Timeline) Done() bool {
	return tl.completed || tl.cancelled
}

// Duration implements Playable
func (tl *Timeline) Duration() float64 {
	return tl.end
}

// Time returns the timeline clock
func (tl *Timeline) Time() float64 {
	return tl.clock
}

// Len returns the number of entries
func (tl *Timeline) Len() int {
	return len(tl.entries)
}
