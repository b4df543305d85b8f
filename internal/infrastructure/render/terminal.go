package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/starfield/internal/domain/entity"
)

// Cell aspect: a terminal cell is roughly twice as tall as it is wide
const (
	CellWidth  = 8
	CellHeight = 16
)

// Brightness ramp, dimmest first
var ramp = []rune{'.', '·', '+', '*', '✦', '✶', '█'}

// Terminal draws frames onto a tcell screen. One cell covers a
// CellWidth×CellHeight block of logical pixels.
type Terminal struct {
	screen    tcell.Screen
	cols      int
	rows      int
	pointSize float64
}

// NewTerminal creates a backend on an initialized screen
func NewTerminal(screen tcell.Screen, pointSize float64) *Terminal {
	cols, rows := screen.Size()
	return &Terminal{
		screen:    screen,
		cols:      cols,
		rows:      rows,
		pointSize: pointSize,
	}
}

// Resize changes the grid size in cells
func (t *Terminal) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	t.cols, t.rows = cols, rows
}

// PixelSize returns the grid size in logical pixels
func (t *Terminal) PixelSize() (int, int) {
	return t.cols * CellWidth, t.rows * CellHeight
}

// Render draws f and shows the screen
func (t *Terminal) Render(f Frame) {
	bg := rgb(f.Background)
	base := tcell.StyleDefault.Background(bg)
	t.screen.Fill(' ', base)

	w, h := t.PixelSize()
	// Brightest star per cell wins
	best := make(map[[2]int]float64)
	for _, s := range Project(f, w, h, t.pointSize) {
		cx, cy := int(s.X)/CellWidth, int(s.Y)/CellHeight
		if cx < 0 || cx >= t.cols || cy < 0 || cy >= t.rows {
			continue
		}
		level := s.Intensity * (s.Radius / minRadius) * (1 + 0.1*f.Bloom)
		key := [2]int{cx, cy}
		if level <= best[key] {
			continue
		}
		best[key] = level

		fg := rgb(s.Color.Scale(entity.Clamp(s.Intensity*(1+0.05*f.Bloom), 0, 1)))
		t.screen.SetContent(cx, cy, glyph(level), nil, base.Foreground(fg))
	}

	if f.HUD.Visible {
		t.drawHUD(f.HUD, base)
	}
	t.screen.Show()
}

func (t *Terminal) drawHUD(hud HUD, base tcell.Style) {
	style := base.Foreground(tcell.ColorWhite)
	for _, b := range hud.Buttons {
		label := fmt.Sprintf("[%s]", b.Label)
		s := style
		if b.Hot {
			s = s.Reverse(true)
		}
		t.print(b.Rect.X/CellWidth, b.Rect.Y/CellHeight, label, s)
	}

	lines := append([]string{"Phase: " + hud.Phase}, hud.Lines...)
	top := t.rows - len(lines)
	for i, line := range lines {
		t.print(0, top+i, line, style)
	}
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= t.cols || y < 0 || y >= t.rows {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// glyph maps a brightness level to a ramp rune
func glyph(level float64) rune {
	if level <= 0 {
		return ramp[0]
	}
	i := int(math.Log2(1+level) * 2)
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	return ramp[i]
}

func rgb(c entity.Color) tcell.Color {
	rgba := c.RGBA(1)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
