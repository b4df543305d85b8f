package system

import "github.com/gdamore/tcell/v2"

// KeyInput maps a terminal key (ev.Key(), ev.Rune()) to an input state.
// 'g' or space go, 'r' returns, 'q', Esc and Ctrl-C quit.
func KeyInput(key tcell.Key, r rune) InputState {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return InputState{Quit: true}
	case tcell.KeyRune:
		switch r {
		case 'g', 'G', ' ':
			return InputState{Go: true}
		case 'r', 'R':
			return InputState{Return: true}
		case 'q', 'Q':
			return InputState{Quit: true}
		}
	}
	return InputState{}
}

// TerminalMouse turns terminal mouse events into input states. tcell
// repeats Button1 on every drag event, so a click is only reported on the
// press edge. Every event carries the pointer position.
type TerminalMouse struct {
	held bool
}

// Input maps a mouse event at cell (x, y) to logical pixels
func (m *TerminalMouse) Input(x, y int, buttons tcell.ButtonMask, cellW, cellH int) InputState {
	pressed := buttons&tcell.Button1 != 0
	click := pressed && !m.held
	m.held = pressed
	return InputState{
		MouseX:     x * cellW,
		MouseY:     y * cellH,
		MouseMoved: true,
		MouseClick: click,
	}
}

// Merge combines two input states from the same frame. A click keeps its
// position over later motion.
func (in InputState) Merge(other InputState) InputState {
	out := in
	out.Go = in.Go || other.Go
	out.Return = in.Return || other.Return
	out.Quit = in.Quit || other.Quit
	switch {
	case other.MouseClick:
		out.MouseX, out.MouseY = other.MouseX, other.MouseY
		out.MouseClick, out.MouseMoved = true, true
	case other.MouseMoved && !in.MouseClick:
		out.MouseX, out.MouseY = other.MouseX, other.MouseY
		out.MouseMoved = true
	}
	return out
}
