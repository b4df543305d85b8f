// Package starfield provides the star field scene: the drifting stars,
// the fly-to-star cinematic and its HUD.
package starfield

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/starfield/internal/application/cinematic"
	"github.com/younwookim/starfield/internal/application/replay"
	"github.com/younwookim/starfield/internal/application/scene"
	"github.com/younwookim/starfield/internal/application/state"
	"github.com/younwookim/starfield/internal/application/system"
	"github.com/younwookim/starfield/internal/application/tween"
	"github.com/younwookim/starfield/internal/domain/entity"
	"github.com/younwookim/starfield/internal/ecs"
	"github.com/younwookim/starfield/internal/infrastructure/audio"
	"github.com/younwookim/starfield/internal/infrastructure/config"
	"github.com/younwookim/starfield/internal/infrastructure/render"
)

// Cues plays short audio cues
type Cues interface {
	Play(c audio.Cue)
}

type noCues struct{}

func (noCues) Play(audio.Cue) {}

// Options configures a Scene. Only Config is required.
type Options struct {
	Config    *config.SceneConfig
	SceneName string // scene file name, stored in recordings
	Seed      int64

	Clock  Clock
	Cues   Cues
	Tuning <-chan system.TuneIntent

	// PollEbiten reads keyboard and mouse from ebiten on every Update.
	// Terminal mode leaves it off and uses Feed instead.
	PollEbiten bool

	RecordPath string
	Replay     *replay.Replayer
}

// Scene is the star field scene
type Scene struct {
	cfg       *config.SceneConfig
	sceneName string
	seed      int64

	world *ecs.World
	state *entity.SceneState
	anim  *tween.Animator
	ctrl  *cinematic.Controller

	input      *system.InputSystem
	pollEbiten bool
	pending    system.InputState
	cursorX    int
	cursorY    int

	tuning <-chan system.TuneIntent
	clock  Clock
	cues   Cues

	renderer *render.Ebiten
	width    int
	height   int
	frames   int

	recorder   *Recorder
	recordPath string
	replayer   *replay.Replayer
	replayDone bool
}

// New creates the scene, generating the star field from the seed
func New(opts Options) (*Scene, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("scene config is required")
	}
	params, err := ParamsFromConfig(cfg.Cinematic)
	if err != nil {
		return nil, fmt.Errorf("failed to build cinematic params: %w", err)
	}

	seed := opts.Seed
	if opts.Replay != nil {
		seed = opts.Replay.Seed()
	}
	rng := rand.New(rand.NewSource(seed))

	world := ecs.NewWorld()
	ecs.GenerateStars(world, rng, StarFieldFromConfig(cfg.Stars))

	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	home := entity.DefaultHome()
	cam := entity.NewCamera(home, params.FOVOriginal, float64(w)/float64(h), cfg.Render.Near, cfg.Render.Far)
	sceneState := entity.NewSceneState(home, cam, params.BloomInit)

	s := &Scene{
		cfg:        cfg,
		sceneName:  opts.SceneName,
		seed:       seed,
		world:      world,
		state:      sceneState,
		anim:       tween.NewAnimator(),
		input:      system.NewInputSystem(cfg.UI),
		pollEbiten: opts.PollEbiten,
		tuning:     opts.Tuning,
		clock:      opts.Clock,
		cues:       opts.Cues,
		renderer:   render.NewEbiten(cfg.Render, w, h),
		width:      w,
		height:     h,
		recordPath: opts.RecordPath,
		replayer:   opts.Replay,
	}
	if s.cues == nil {
		s.cues = noCues{}
	}
	if s.replayer != nil {
		s.clock = NewFrameClock(s.replayer.StartMillis(), cfg.Display.Framerate)
		log.Printf("Replaying %d frames (seed: %d)", s.replayer.TotalFrames(), seed)
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}

	s.ctrl = cinematic.NewController(sceneState, world, s.anim, rng, params, cinematic.Hooks{
		OnPhase: s.onPhase,
	})

	if s.recordPath != "" && s.replayer == nil {
		s.recorder = NewRecorder(seed, s.sceneName, s.clock.Now().UnixMilli())
		log.Printf("Recording enabled: %s (seed: %d)", s.recordPath, seed)
	}

	log.Printf("[scene] %d stars generated (seed: %d)", world.CountStars(), seed)
	return s, nil
}

// Update advances one frame (implements scene.Scene).
// Tuning, then intents, then drift and flicker, then the animator, so
// every write of the frame lands before Draw reads the state.
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	s.drainTuning()

	in := s.readInput()
	if in.Quit {
		return nil, scene.ErrQuit
	}
	s.cursorX, s.cursorY = in.MouseX, in.MouseY
	for _, intent := range s.input.Intents(in) {
		s.apply(intent)
	}

	if !s.state.Whiteout {
		ecs.UpdateDrift(s.world)
		now := float64(s.clock.Now().UnixMilli())
		ecs.UpdateFlicker(s.world, now, s.cfg.Stars.FlickerAmt, s.cfg.Stars.FlickerFreq)
	}

	s.anim.Update(dt)

	if t, ok := s.clock.(ticker); ok {
		t.Tick()
	}
	s.frames++
	return nil, nil // nil = stay on this scene
}

// Feed queues input for the next Update. Terminal mode calls it from
// the event loop; several events in one frame are merged.
func (s *Scene) Feed(in system.InputState) {
	s.pending = s.pending.Merge(in)
}

func (s *Scene) readInput() system.InputState {
	if s.replayer != nil {
		// Quit stays live during replays
		quit := s.pending.Quit
		if s.pollEbiten {
			quit = quit || s.input.GetInput().Quit
		}
		s.pending = system.InputState{}

		if s.replayer.Done() {
			if !s.replayDone {
				s.replayDone = true
				log.Printf("Replay finished (%d frames)", s.replayer.TotalFrames())
			}
			return system.InputState{Quit: quit, MouseX: s.cursorX, MouseY: s.cursorY}
		}
		ri, _ := s.replayer.GetInput()
		return system.InputState{
			Go:         ri.Go,
			Return:     ri.Return,
			Quit:       quit,
			MouseX:     ri.MouseX,
			MouseY:     ri.MouseY,
			MouseClick: ri.MouseClick,
		}
	}

	in := s.pending
	s.pending = system.InputState{}
	if s.pollEbiten {
		in = s.input.GetInput().Merge(in)
	} else if !in.MouseMoved {
		in.MouseX, in.MouseY = s.cursorX, s.cursorY
	}

	if s.recorder != nil {
		s.recorder.RecordFrame(in)
	}
	return in
}

func (s *Scene) apply(intent system.Intent) {
	switch it := intent.(type) {
	case system.GoToStarIntent:
		s.ctrl.GoToStar()
	case system.ReturnIntent:
		s.ctrl.ReturnToInit()
	case system.TuneIntent:
		s.tune(it)
	}
}

func (s *Scene) drainTuning() {
	if s.tuning == nil {
		return
	}
	for {
		select {
		case t, ok := <-s.tuning:
			if !ok {
				s.tuning = nil
				return
			}
			s.apply(t)
		default:
			return
		}
	}
}

func (s *Scene) tune(t system.TuneIntent) {
	if t.Bloom != nil {
		s.state.SetBloom(*t.Bloom)
		log.Printf("[tuning] bloom = %.2f", s.state.Bloom)
	}
	if t.FOV != nil {
		s.state.Camera.SetFOV(*t.FOV)
		log.Printf("[tuning] fov = %.1f", s.state.Camera.FOV)
	}
}

func (s *Scene) onPhase(from, to state.Phase) {
	log.Printf("[cinematic] %s -> %s", from, to)
	switch {
	case to == state.RotatingToTarget:
		s.cues.Play(audio.CueLaunch)
	case to == state.Whiteout:
		s.cues.Play(audio.CueWhiteout)
	case from == state.ReturningLook && to == state.Idle:
		s.cues.Play(audio.CueReturned)
	}
}

// Draw renders the current frame (implements scene.Scene)
func (s *Scene) Draw(screen *ebiten.Image) {
	s.renderer.Render(screen, s.Frame())
}

// Resize follows the drawable size (implements scene.Resizer)
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.state.Camera.SetAspect(width, height)
	s.renderer.Resize(width, height)
}

// OnEnter is called when the scene becomes active
func (s *Scene) OnEnter() {
	log.Printf("[scene] entered (%dx%d)", s.width, s.height)
}

// OnExit saves the recording, if any
func (s *Scene) OnExit() {
	s.saveRecording()
}

// saveRecording saves the current recording to file
func (s *Scene) saveRecording() {
	if s.recorder == nil || !s.recorder.IsRecording() {
		return
	}
	s.recorder.Stop()

	filename := s.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := s.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, s.recorder.FrameCount())
	}
}

// GoToStar starts the cinematic directly, bypassing input
func (s *Scene) GoToStar() bool {
	return s.ctrl.GoToStar()
}

// ReturnToInit starts the return directly, bypassing input
func (s *Scene) ReturnToInit() bool {
	return s.ctrl.ReturnToInit()
}

// Phase returns the cinematic phase
func (s *Scene) Phase() state.Phase {
	return s.ctrl.Phase()
}

// State returns the live scene state (for tests)
func (s *Scene) State() *entity.SceneState {
	return s.state
}

// World returns the star world (for tests)
func (s *Scene) World() *ecs.World {
	return s.world
}

// Controller returns the cinematic controller
func (s *Scene) Controller() *cinematic.Controller {
	return s.ctrl
}

// Recorder returns the active recorder, nil when not recording
func (s *Scene) Recorder() *Recorder {
	return s.recorder
}

// Frames returns the number of updates run
func (s *Scene) Frames() int {
	return s.frames
}

// Seed returns the star field seed
func (s *Scene) Seed() int64 {
	return s.seed
}

// Size returns the logical drawable size
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}
