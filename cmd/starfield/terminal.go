package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/starfield/internal/application/scene"
	"github.com/younwookim/starfield/internal/application/scene/starfield"
	"github.com/younwookim/starfield/internal/application/system"
	"github.com/younwookim/starfield/internal/infrastructure/config"
	"github.com/younwookim/starfield/internal/infrastructure/render"
)

// runTerminal drives the scene from a ticker and renders with tcell
func runTerminal(s *starfield.Scene, cfg *config.SceneConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	term := render.NewTerminal(screen, cfg.Render.PointSize)
	err = loop(screen, term, s, cfg.Display.Framerate)
	screen.Fini()
	s.OnExit()
	return err
}

// loop pumps screen events into the scene until quit. PollEvent runs in
// its own goroutine and returns nil once the screen is finalized.
func loop(screen tcell.Screen, term *render.Terminal, s *starfield.Scene, framerate int) error {
	resize := func(cols, rows int) {
		term.Resize(cols, rows)
		s.Resize(term.PixelSize())
	}
	resize(screen.Size())
	s.OnEnter()

	var mouse system.TerminalMouse
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	if framerate <= 0 {
		framerate = 60
	}
	dt := 1.0 / float64(framerate)
	ticker := time.NewTicker(time.Second / time.Duration(framerate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.Feed(system.KeyInput(ev.Key(), ev.Rune()))
			case *tcell.EventMouse:
				x, y := ev.Position()
				s.Feed(mouse.Input(x, y, ev.Buttons(), render.CellWidth, render.CellHeight))
			case *tcell.EventResize:
				resize(ev.Size())
				screen.Sync()
			}
		case <-ticker.C:
			if _, err := s.Update(dt); err != nil {
				if errors.Is(err, scene.ErrQuit) {
					return nil
				}
				return err
			}
			term.Render(s.Frame())
		}
	}
}
