package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/starfield/internal/infrastructure/config"
)

// Button identifies an on-screen control
type Button int

const (
	ButtonNone Button = iota
	ButtonGo
	ButtonReturn
)

// InputSystem turns raw input into intents
type InputSystem struct {
	ui config.UIConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(ui config.UIConfig) *InputSystem {
	return &InputSystem{ui: ui}
}

// InputState holds the current input state
type InputState struct {
	Go         bool // G or Space
	Return     bool // R
	Quit       bool
	MouseX     int
	MouseY     int
	MouseMoved bool // MouseX/MouseY were reported this frame
	MouseClick bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Go:         inpututil.IsKeyJustPressed(ebiten.KeyG) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Return:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		MouseX:     mx,
		MouseY:     my,
		MouseMoved: true,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// ButtonAt returns the button under the point (x, y)
func (s *InputSystem) ButtonAt(x, y int) Button {
	switch {
	case s.ui.GoButton.Contains(x, y):
		return ButtonGo
	case s.ui.ReturnButton.Contains(x, y):
		return ButtonReturn
	default:
		return ButtonNone
	}
}

// Intents maps an input state to intents. At most one cinematic intent
// is produced per frame; go wins over return.
func (s *InputSystem) Intents(in InputState) []Intent {
	goPressed := in.Go
	returnPressed := in.Return
	if in.MouseClick {
		switch s.ButtonAt(in.MouseX, in.MouseY) {
		case ButtonGo:
			goPressed = true
		case ButtonReturn:
			returnPressed = true
		}
	}

	switch {
	case goPressed:
		return []Intent{GoToStarIntent{}}
	case returnPressed:
		return []Intent{ReturnIntent{}}
	default:
		return nil
	}
}
