package main

import (
	"fmt"

	"github.com/younwookim/starfield/internal/application/replay"
	"github.com/younwookim/starfield/internal/application/scene/starfield"
	"github.com/younwookim/starfield/internal/infrastructure/config"
)

// ReplayResult is the end state of a headless replay
type ReplayResult struct {
	Frames    int
	Phase     string
	HasTarget bool
	TargetID  uint64
	CameraX   float64
	CameraY   float64
	CameraZ   float64
	FOV       float64
	Bloom     float64
	Whiteout  bool
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("frames=%d phase=%s target=%v(%d) camera=(%.4f, %.4f, %.4f) fov=%.3f bloom=%.3f whiteout=%v",
		r.Frames, r.Phase, r.HasTarget, r.TargetID, r.CameraX, r.CameraY, r.CameraZ, r.FOV, r.Bloom, r.Whiteout)
}

// runHeadless plays every recorded frame at the configured framerate
// without opening a window
func runHeadless(cfg *config.SceneConfig, replayer *replay.Replayer) (ReplayResult, error) {
	s, err := starfield.New(starfield.Options{
		Config: cfg,
		Replay: replayer,
	})
	if err != nil {
		return ReplayResult{}, err
	}

	dt := 1.0 / float64(cfg.Display.Framerate)
	for i := 0; i < replayer.TotalFrames(); i++ {
		if _, err := s.Update(dt); err != nil {
			return ReplayResult{}, fmt.Errorf("frame %d: %w", i, err)
		}
	}

	st := s.State()
	tgt, ok := s.Controller().Target()
	return ReplayResult{
		Frames:    s.Frames(),
		Phase:     s.Phase().String(),
		HasTarget: ok,
		TargetID:  uint64(tgt.ID),
		CameraX:   st.Camera.Position.X,
		CameraY:   st.Camera.Position.Y,
		CameraZ:   st.Camera.Position.Z,
		FOV:       st.Camera.FOV,
		Bloom:     st.Bloom,
		Whiteout:  st.Whiteout,
	}, nil
}
