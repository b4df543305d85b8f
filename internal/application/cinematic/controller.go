package cinematic

import (
	"log"
	"math/rand"

	"github.com/younwookim/starfield/internal/application/state"
	"github.com/younwookim/starfield/internal/application/tween"
	"github.com/younwookim/starfield/internal/domain/entity"
	"github.com/younwookim/starfield/internal/ecs"
)

// Hooks are optional observers of the controller
type Hooks struct {
	// OnPhase is called on every phase change
	OnPhase func(from, to state.Phase)
}

// Controller runs the go-to-star and return-to-init sequences.
// It schedules playables on anim but does not advance it; the caller
// updates the animator once per frame.
type Controller struct {
	scene  *entity.SceneState
	world  *ecs.World
	anim   *tween.Animator
	rng    *rand.Rand
	params Params
	hooks  Hooks

	phase     state.Phase
	gen       uint64
	target    Target
	hasTarget bool
	returning bool

	fade   float64      // background gray level while fading
	expand *tween.Tween // running FOV expansion, cancelled by the revert
}

// NewController creates an idle controller
func NewController(scene *entity.SceneState, world *ecs.World, anim *tween.Animator, rng *rand.Rand, params Params, hooks Hooks) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Controller{
		scene:  scene,
		world:  world,
		anim:   anim,
		rng:    rng,
		params: params.withDefaults(),
		hooks:  hooks,
		phase:  state.Idle,
	}
}

// Phase returns the current phase
func (c *Controller) Phase() state.Phase {
	return c.phase
}

// Generation returns the session token. It changes whenever a session
// starts or is superseded.
func (c *Controller) Generation() uint64 {
	return c.gen
}

// Target returns the recorded target, if any
func (c *Controller) Target() (Target, bool) {
	return c.target, c.hasTarget
}

// Params returns the active parameters
func (c *Controller) Params() Params {
	return c.params
}

// Running reports whether any cinematic playable is still active
func (c *Controller) Running() bool {
	return c.anim.ActiveTag(Tag) > 0
}

// GoToStar starts a new session, superseding any running one.
// Returns false if no star qualifies as a target; the current session,
// if any, is left untouched.
func (c *Controller) GoToStar() bool {
	tgt, ok := SelectTarget(c.world, c.scene.Home, c.params, c.rng)
	if !ok {
		log.Printf("[cinematic] no candidate star in front of home pose")
		return false
	}

	c.invalidate()
	if c.hasTarget {
		c.scene.ClearWhiteout()
		c.scene.Background = entity.Black
		c.world.SetScale(c.target.ID, 1)
	}
	c.returning = false
	c.setPhase(state.SelectingTarget)

	c.target = tgt
	c.hasTarget = true
	log.Printf("[cinematic] target star %d at (%.1f, %.1f, %.1f)",
		tgt.ID, tgt.Position.X, tgt.Position.Y, tgt.Position.Z)

	c.rotate(c.gen)
	return true
}

// ReturnToInit plays the inverse sequence back to the home pose.
// It is a no-op without a recorded target or while already returning.
func (c *Controller) ReturnToInit() bool {
	if !c.hasTarget || c.returning {
		return false
	}
	c.invalidate()
	c.returning = true
	gen := c.gen
	p := c.params
	cam := &c.scene.Camera
	home := c.scene.Home
	tgt := c.target

	c.scene.ClearWhiteout()
	c.scene.Background = entity.Black

	fov := tween.New(c.props(gen, c.fovProp(p.FOVOriginal)), tween.Config{
		Duration: p.FOVTime,
		Ease:     p.Ease,
	})
	bloom := tween.New(c.props(gen, c.bloomProp(p.BloomInit)), tween.Config{
		Duration: p.BloomTime,
		Ease:     p.Ease,
		OnStart:  c.guard(gen, func() { c.setPhase(state.ReturningBloom) }),
	})
	move := tween.New(c.props(gen, tween.Vec(&cam.Position, home.Position)...), tween.Config{
		Duration: p.CamMoveTime,
		Ease:     p.Ease,
		OnStart:  c.guard(gen, func() { c.setPhase(state.ReturningPosition) }),
		OnUpdate: func(float64) {
			if c.live(gen) {
				cam.LookAt(tgt.Position)
			}
		},
	})
	look := tween.New(c.props(gen, tween.Vec(&cam.Look, home.Look)...), tween.Config{
		Duration: p.CamRotateTime,
		Ease:     p.CamRotateEase,
		OnStart:  c.guard(gen, func() { c.setPhase(state.ReturningLook) }),
	})

	tl := tween.NewTimeline()
	tl.Add(fov, tween.At(0))
	tl.Add(bloom, tween.With())
	tl.Then(move)
	tl.Call(c.guard(gen, func() { c.world.SetScale(tgt.ID, 1) }), tween.After(0))
	tl.Then(look)
	tl.OnComplete = c.guard(gen, c.finishReturn)

	c.setPhase(state.ReturningBloom)
	c.anim.Play(tl, Tag)
	return true
}

func (c *Controller) finishReturn() {
	c.target = Target{}
	c.hasTarget = false
	c.returning = false
	c.setPhase(state.Idle)
}

// invalidate supersedes every playable of the current session
func (c *Controller) invalidate() {
	c.gen++
	c.anim.CancelTag(Tag)
	c.expand = nil
}

func (c *Controller) live(gen uint64) bool {
	return c.gen == gen
}

func (c *Controller) guard(gen uint64, fn func()) func() {
	return func() {
		if c.live(gen) {
			fn()
		}
	}
}

// props wraps each setter so stale sessions cannot write
func (c *Controller) props(gen uint64, props ...tween.Prop) []tween.Prop {
	out := make([]tween.Prop, len(props))
	for i, p := range props {
		set := p.Set
		p.Set = func(v float64) {
			if c.live(gen) {
				set(v)
			}
		}
		out[i] = p
	}
	return out
}

func (c *Controller) bloomProp(to float64) tween.Prop {
	return tween.Prop{
		Get: func() float64 { return c.scene.Bloom },
		Set: c.scene.SetBloom,
		To:  to,
	}
}

// scaleProp animates the target's scale. Writes to a destroyed star are dropped.
func (c *Controller) scaleProp(id ecs.EntityID, to float64) tween.Prop {
	return tween.Prop{
		Get: func() float64 { return c.world.GetScale(id) },
		Set: func(v float64) { c.world.SetScale(id, v) },
		To:  to,
	}
}

func (c *Controller) fovProp(to float64) tween.Prop {
	cam := &c.scene.Camera
	return tween.Prop{
		Get: func() float64 { return cam.FOV },
		Set: func(v float64) {
			cam.FOV = v
			cam.UpdateProjection()
		},
		To: to,
	}
}

func (c *Controller) play(p tween.Playable) {
	c.anim.Play(p, Tag)
}

// rotate aims the camera from its current look point at the target
func (c *Controller) rotate(gen uint64) {
	c.setPhase(state.RotatingToTarget)
	cam := &c.scene.Camera
	c.play(tween.New(c.props(gen, tween.Vec(&cam.Look, c.target.Position)...), tween.Config{
		Duration:   c.params.CamRotateTime,
		Ease:       c.params.CamRotateEase,
		OnComplete: c.guard(gen, func() { c.expandFOV(gen) }),
	}))
}

func (c *Controller) expandFOV(gen uint64) {
	c.setPhase(state.ExpandingFOV)
	spawnMove := tween.NewTrigger(c.params.MoveSpawnAt, c.guard(gen, func() { c.move(gen) }))

	expand := tween.New(c.props(gen, c.fovProp(c.params.FOVTarget)), tween.Config{
		Duration: c.params.FOVTime,
		Ease:     c.params.Ease,
		OnUpdate: func(p float64) { spawnMove.Check(p) },
	})
	c.expand = expand
	c.play(expand)
}

func (c *Controller) move(gen uint64) {
	c.setPhase(state.MovingToTarget)
	cam := &c.scene.Camera
	tgt := c.target.Position
	mid := ApproachPoint(cam.Position, tgt, c.params.ApproachDistance)
	spawnRevert := tween.NewTrigger(c.params.RevertSpawnAt, c.guard(gen, func() { c.revertFOV(gen) }))

	c.play(tween.New(c.props(gen, tween.Vec(&cam.Position, mid)...), tween.Config{
		Duration: c.params.CamMoveTime,
		Ease:     c.params.Ease,
		OnUpdate: func(p float64) {
			if !c.live(gen) {
				return
			}
			cam.LookAt(tgt)
			spawnRevert.Check(p)
		},
	}))
}

func (c *Controller) revertFOV(gen uint64) {
	// The expansion may still be writing FOV under short timings
	if c.expand != nil {
		c.expand.Cancel()
	}
	c.setPhase(state.RevertingFOV)
	c.play(tween.New(c.props(gen, c.fovProp(c.params.FOVOriginal)), tween.Config{
		Duration:   c.params.FOVTime,
		Ease:       c.params.Ease,
		OnComplete: c.guard(gen, func() { c.bloomAndEnlarge(gen) }),
	}))
}

func (c *Controller) bloomAndEnlarge(gen uint64) {
	c.setPhase(state.BloomAndEnlarge)
	p := c.params

	tl := tween.NewTimeline()
	tl.Add(tween.New(c.props(gen, c.bloomProp(p.BloomTarget)), tween.Config{
		Duration: p.BloomTime,
		Ease:     p.Ease,
	}), tween.At(0))
	tl.Add(tween.New(c.props(gen, c.scaleProp(c.target.ID, p.EnlargeScale)), tween.Config{
		Duration: p.BloomTime,
		Ease:     p.Ease,
	}), tween.With())
	tl.OnComplete = c.guard(gen, func() { c.whiteout(gen) })
	c.play(tl)
}

func (c *Controller) whiteout(gen uint64) {
	c.setPhase(state.Whiteout)
	c.scene.EnterWhiteout()
	c.fadeToBlack(gen)
}

func (c *Controller) fadeToBlack(gen uint64) {
	c.setPhase(state.FadingToBlack)
	c.fade = 1
	c.play(tween.New(c.props(gen, tween.Float(&c.fade, 0)), tween.Config{
		Duration: c.params.FadeToBlackTime,
		Ease:     c.params.FadeEase,
		OnUpdate: func(float64) {
			if c.live(gen) {
				c.scene.Background = entity.Gray(c.fade)
			}
		},
	}))
}

func (c *Controller) setPhase(to state.Phase) {
	from := c.phase
	if from == to {
		return
	}
	c.phase = to
	if c.hooks.OnPhase != nil {
		c.hooks.OnPhase(from, to)
	}
}
