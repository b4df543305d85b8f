package starfield

import (
	"fmt"

	"github.com/younwookim/starfield/internal/application/system"
	"github.com/younwookim/starfield/internal/infrastructure/render"
)

// Button labels
const (
	LabelGo     = "GO"
	LabelReturn = "RETURN"
)

// Frame snapshots the scene for a renderer. The result shares nothing
// mutable with the scene.
func (s *Scene) Frame() render.Frame {
	ids := s.world.Stars()
	stars := make([]render.Star, 0, len(ids))
	for _, id := range ids {
		look := s.world.Appearance[id]
		stars = append(stars, render.Star{
			Position:  s.world.Position[id],
			Color:     look.Color,
			Size:      look.Size,
			Intensity: look.Intensity,
			Scale:     s.world.GetScale(id),
		})
	}

	return render.Frame{
		Camera:     s.state.Camera,
		Background: s.state.Background,
		Bloom:      s.state.Bloom,
		Whiteout:   s.state.Whiteout,
		Stars:      stars,
		HUD:        s.hud(),
	}
}

func (s *Scene) hud() render.HUD {
	if !s.cfg.Render.HUD {
		return render.HUD{}
	}
	hot := s.input.ButtonAt(s.cursorX, s.cursorY)
	lines := []string{
		fmt.Sprintf("bloom %.2f  fov %.1f", s.state.Bloom, s.state.Camera.FOV),
		"G: go to star  R: return  Esc: quit",
	}
	if s.replayer != nil {
		lines = append(lines, fmt.Sprintf("replay %d/%d", s.replayer.CurrentFrame(), s.replayer.TotalFrames()))
	} else if s.recorder != nil {
		lines = append(lines, fmt.Sprintf("rec %d", s.recorder.FrameCount()))
	}

	return render.HUD{
		Visible: true,
		Phase:   s.ctrl.Phase().String(),
		Lines:   lines,
		Buttons: []render.Button{
			{Label: LabelGo, Rect: s.cfg.UI.GoButton, Hot: hot == system.ButtonGo},
			{Label: LabelReturn, Rect: s.cfg.UI.ReturnButton, Hot: hot == system.ButtonReturn},
		},
	}
}
