package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/starfield/internal/domain/entity"
	"github.com/younwookim/starfield/internal/infrastructure/config"
)

var (
	colorButton    = color.RGBA{40, 48, 72, 200}
	colorButtonHot = color.RGBA{80, 96, 144, 230}
	colorHUDShadow = color.RGBA{0, 0, 0, 120}
)

// Ebiten draws frames onto an ebiten image
type Ebiten struct {
	width     int
	height    int
	pointSize float64
	style     string
}

// NewEbiten creates a backend for a w×h logical screen
func NewEbiten(cfg config.RenderConfig, w, h int) *Ebiten {
	return &Ebiten{
		width:     w,
		height:    h,
		pointSize: cfg.PointSize,
		style:     cfg.Style,
	}
}

// Resize changes the viewport size
func (e *Ebiten) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	e.width, e.height = w, h
}

// Size returns the viewport size
func (e *Ebiten) Size() (int, int) {
	return e.width, e.height
}

// Render draws f onto dst
func (e *Ebiten) Render(dst *ebiten.Image, f Frame) {
	dst.Fill(f.Background.RGBA(1))

	for _, s := range Project(f, e.width, e.height, e.pointSize) {
		e.drawSprite(dst, s, f.Bloom)
	}

	if f.HUD.Visible {
		e.drawHUD(dst, f.HUD)
	}
}

func (e *Ebiten) drawSprite(dst *ebiten.Image, s Sprite, bloom float64) {
	x, y := float32(s.X), float32(s.Y)
	lit := s.Color.Scale(s.Intensity)

	if bloom > 0 {
		halo := HaloRadius(s.Radius, bloom)
		vector.DrawFilledCircle(dst, x, y, float32(halo), lit.RGBA(HaloAlpha(s.Intensity, bloom)), true)
	}

	// Sub-pixel stars fade instead of shrinking further
	alpha := entity.Clamp(s.Radius, 0.25, 1)
	vector.DrawFilledCircle(dst, x, y, float32(s.Radius), lit.RGBA(alpha), true)

	if e.style == config.StyleSpheres && s.Radius >= 2 {
		// Specular highlight toward a fixed upper-left light
		hx := x - float32(s.Radius*0.35)
		hy := y - float32(s.Radius*0.35)
		vector.DrawFilledCircle(dst, hx, hy, float32(s.Radius*0.35), entity.White.RGBA(0.55), true)
	}
}

func (e *Ebiten) drawHUD(dst *ebiten.Image, hud HUD) {
	for _, b := range hud.Buttons {
		c := colorButton
		if b.Hot {
			c = colorButtonHot
		}
		r := b.Rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		ebitenutil.DebugPrintAt(dst, b.Label, r.X+8, r.Y+r.H/2-8)
	}

	lines := append([]string{fmt.Sprintf("Phase: %s", hud.Phase)}, hud.Lines...)
	y := e.height - 16*len(lines) - 8
	vector.DrawFilledRect(dst, 0, float32(y-4), 220, float32(16*len(lines)+12), colorHUDShadow, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(dst, line, 8, y+16*i)
	}
}
