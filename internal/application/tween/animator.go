package tween

type track struct {
	p   Playable
	tag string
}

// Animator owns the running playables and advances them once per frame.
// Playables added while Update is running start on the next Update.
type Animator struct {
	tracks  []track
	pending []track
}

// NewAnimator creates an idle animator
func NewAnimator() *Animator {
	return &Animator{}
}

// Play registers p under tag and returns it
func (a *Animator) Play(p Playable, tag string) Playable {
	a.pending = append(a.pending, track{p: p, tag: tag})
	return p
}

// Update advances every playable by dt in insertion order and drops the
// ones that ended.
func (a *Animator) Update(dt float64) {
	a.tracks = append(a.tracks, a.pending...)
	a.pending = nil

	for _, tr := range a.tracks {
		if tr.p.Done() {
			continue
		}
		tr.p.Update(dt)
	}

	live := a.tracks[:0]
	for _, tr := range a.tracks {
		if !tr.p.Done() {
			live = append(live, tr)
		}
	}
	// Clear the tail so dropped playables can be collected
	for i := len(live); i < len(a.tracks); i++ {
		a.tracks[i] = track{}
	}
	a.tracks = live
}

// CancelTag cancels all playables registered under tag and returns how
// many were cancelled. Takes effect immediately, also mid-Update.
func (a *Animator) CancelTag(tag string) int {
	n := 0
	for _, tr := range a.tracks {
		if tr.tag == tag && !tr.p.Done() {
			tr.p.Cancel()
			n++
		}
	}
	kept := a.pending[:0]
	for _, tr := range a.pending {
		if tr.tag == tag {
			tr.p.Cancel()
			n++
			continue
		}
		kept = append(kept, tr)
	}
	a.pending = kept
	return n
}

// CancelAll cancels everything
func (a *Animator) CancelAll() {
	for _, tr := range a.tracks {
		tr.p.Cancel()
	}
	for _, tr := range a.pending {
		tr.p.Cancel()
	}
	a.pending = nil
}

// Active returns the number of playables that have not ended
func (a *Animator) Active() int {
	n := 0
	for _, tr := range a.tracks {
		if !tr.p.Done() {
			n++
		}
	}
	for _, tr := range a.pending {
		if !tr.p.Done() {
			n++
		}
	}
	return n
}

// ActiveTag returns the number of live playables under tag
func (a *Animator) ActiveTag(tag string) int {
	n := 0
	for _, list := range [][]track{a.tracks, a.pending} {
		for _, tr := range list {
			if tr.tag == tag && !tr.p.Done() {
				n++
			}
		}
	}
	return n
}

// Trigger runs fn once, the first time a reported progress reaches At.
// Used from OnUpdate to spawn a dependent tween partway through another.
type Trigger struct {
	At    float64
	fn    func()
	fired bool
}

// NewTrigger creates a trigger at the given progress fraction
func NewTrigger(at float64, fn func()) *Trigger {
	return &Trigger{At: at, fn: fn}
}

// Check fires the trigger if progress >= At and it has not fired yet.
// Returns true only on the call that fired.
func (t *Trigger) Check(progress float64) bool {
	if t.fired || progress < t.At {
		return false
	}
	t.fired = true
	if t.fn != nil {
		t.fn()
	}
	return true
}

// Fired reports whether the trigger has run
func (t *Trigger) Fired() bool {
	return t.fired
}
