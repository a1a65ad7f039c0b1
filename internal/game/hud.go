package game

import (
	"fmt"
	"image/color"

	"raycaster/internal/render"
	"raycaster/internal/scene"
	"raycaster/internal/threading/monitoring"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 8
	hudLineHeight = 15
	hudPadding    = 4
	hudFadeTime   = 0.25 // seconds
)

var (
	hudTextColor       = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	hudBackgroundColor = color.RGBA{0, 0, 0, 0xa0}
)

// hudFader fades the overlay in and out when it is toggled
type hudFader struct {
	visible bool
	alpha   float32
	tween   *gween.Tween
}

// Toggle starts a fade towards the other state from the current alpha
func (f *hudFader) Toggle() {
	f.visible = !f.visible
	target := float32(0)
	if f.visible {
		target = 1
	}
	f.tween = gween.New(f.alpha, target, hudFadeTime, ease.OutQuad)
}

// Update advances a running fade by dt seconds
func (f *hudFader) Update(dt float32) {
	if f.tween == nil {
		return
	}
	alpha, finished := f.tween.Update(dt)
	f.alpha = alpha
	if finished {
		f.tween = nil
	}
}

// Alpha is the current overlay opacity in [0, 1]
func (f *hudFader) Alpha() float32 {
	return f.alpha
}

// hudStats are the values shown on the debug overlay
type hudStats struct {
	FPS, TPS  float64
	Viewpoint render.Viewpoint
	Frame     scene.Frame
	Metrics   monitoring.Metrics
	Parallel  bool
}

// hudLines formats the debug overlay
func hudLines(s hudStats) []string {
	mode := "serial"
	if s.Parallel {
		mode = "parallel"
	}
	return []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", s.FPS, s.TPS),
		fmt.Sprintf("pos %.2f, %.2f  angle %.2f", s.Viewpoint.X, s.Viewpoint.Y, s.Viewpoint.Angle),
		fmt.Sprintf("columns %d (%s)  sprites %d/%d", len(s.Frame.Projection.Columns), mode, s.Frame.VisibleSprites(), len(s.Frame.Sprites)),
		fmt.Sprintf("walls %s  sprites %s", s.Metrics.ProjectionTime, s.Metrics.SpriteTime),
		fmt.Sprintf("bumps %d  mem %d MB", s.Metrics.Bumps, s.Metrics.MemoryUsageMB),
	}
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), scale(c.A)}
}

// drawHUD draws lines in the top right corner, clear of the minimap
func drawHUD(screen *ebiten.Image, lines []string, alpha float32) {
	face := basicfont.Face7x13

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	height := len(lines) * hudLineHeight

	x := screen.Bounds().Dx() - width - hudMargin - hudPadding
	y := hudMargin
	vector.DrawFilledRect(screen,
		float32(x-hudPadding), float32(y-hudPadding),
		float32(width+2*hudPadding), float32(height+2*hudPadding),
		fade(hudBackgroundColor, alpha), false)

	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		ebitext.Draw(screen, line, face, x, y+i*hudLineHeight+ascent, fade(hudTextColor, alpha))
	}
}
