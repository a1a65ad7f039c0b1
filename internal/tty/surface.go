// Package tty presents frames in a terminal. Each cell shows two pixels
// stacked vertically using the upper half block glyph.
package tty

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"raycaster/internal/graphics"
	"raycaster/internal/mathutil"
	"raycaster/internal/render"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = '▀'

// Surface rasterises draw commands into an RGBA frame and flushes it to a
// tcell screen on Present
type Surface struct {
	screen   tcell.Screen
	textures *graphics.TextureManager
	frame    *image.RGBA
	scratch  *image.RGBA
}

// NewSurface creates a surface sized to the screen
func NewSurface(screen tcell.Screen, tm *graphics.TextureManager) *Surface {
	s := &Surface{screen: screen, textures: tm}
	s.Resize()
	return s
}

// PixelSize is the frame size for a screen: one pixel per column, two per row
func PixelSize(screen tcell.Screen) (int, int) {
	cols, rows := screen.Size()
	return cols, rows * 2
}

// Resize matches the frame to the current screen size and returns it
func (s *Surface) Resize() (int, int) {
	w, h := PixelSize(s.screen)
	if s.frame == nil || s.frame.Bounds().Dx() != w || s.frame.Bounds().Dy() != h {
		s.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return w, h
}

// Frame exposes the pixels drawn since the last Clear
func (s *Surface) Frame() *image.RGBA {
	return s.frame
}

// Draw rasterises one command
func (s *Surface) Draw(cmd render.DrawCommand) {
	switch c := cmd.(type) {
	case render.Clear:
		draw.Draw(s.frame, s.frame.Bounds(), image.NewUniform(c.Color), image.Point{}, draw.Src)
	case render.FillRect:
		draw.Draw(s.frame, pixelRect(c.Dst), image.NewUniform(c.Color), image.Point{}, draw.Over)
	case render.GradientRect:
		s.drawGradient(c)
	case render.TexturedRect:
		s.drawTextured(c)
	case render.StrokeRect:
		r := pixelRect(c.Dst)
		if r.Empty() {
			return
		}
		x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
		s.line(x0, y0, x1, y0, c.Color)
		s.line(x1, y0, x1, y1, c.Color)
		s.line(x1, y1, x0, y1, c.Color)
		s.line(x0, y1, x0, y0, c.Color)
	case render.Line:
		s.line(round(c.X1), round(c.Y1), round(c.X2), round(c.Y2), c.Color)
	}
}

// Present writes the frame to the screen and shows it
func (s *Surface) Present() {
	b := s.frame.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := s.frame.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Dy() {
				bottom = s.frame.RGBAAt(x, y+1)
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			s.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	s.screen.Show()
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func round(v float64) int {
	return int(math.Round(v))
}

// pixelRect snaps a float rect to whole pixels
func pixelRect(r render.Rect) image.Rectangle {
	return image.Rect(round(r.X), round(r.Y), round(r.Right()), round(r.Bottom()))
}

func (s *Surface) drawGradient(c render.GradientRect) {
	r := pixelRect(c.Dst).Intersect(s.frame.Bounds())
	if r.Empty() {
		return
	}
	rows := float64(pixelRect(c.Dst).Dy())
	top := pixelRect(c.Dst).Min.Y
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := 0.0
		if rows > 1 {
			t = float64(y-top) / (rows - 1)
		}
		row := image.Rect(r.Min.X, y, r.Max.X, y+1)
		draw.Draw(s.frame, row, image.NewUniform(lerpColor(c.Top, c.Bottom, t)), image.Point{}, draw.Src)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(mathutil.Lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// drawTextured scales the source region into a scratch frame, applies the
// tint there and composites the visible part, so transparent texels stay
// clear and off-screen rows are never rasterised
func (s *Surface) drawTextured(c render.TexturedRect) {
	dst := pixelRect(c.Dst)
	visible := dst.Intersect(s.frame.Bounds())
	if visible.Empty() || c.Src.Empty() {
		return
	}

	tex := s.textures.Get(c.Texture)
	src := image.Rect(
		int(math.Floor(c.Src.X)), int(math.Floor(c.Src.Y)),
		int(math.Ceil(c.Src.Right())), int(math.Ceil(c.Src.Bottom())),
	).Intersect(tex.Bounds())
	if src.Empty() {
		return
	}

	if s.scratch == nil || s.scratch.Bounds() != s.frame.Bounds() {
		s.scratch = image.NewRGBA(s.frame.Bounds())
	}
	xdraw.NearestNeighbor.Scale(s.scratch, dst, tex, src, xdraw.Src, nil)
	tint(s.scratch.SubImage(visible).(*image.RGBA), c.Tint)

	draw.Draw(s.frame, visible, s.scratch, visible.Min, draw.Over)
}

// tint multiplies every pixel of img by c, premultiplied alpha included
func tint(img *image.RGBA, c color.RGBA) {
	if c == render.White {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i] = uint8(uint16(row[i]) * uint16(c.R) / 0xff)
			row[i+1] = uint8(uint16(row[i+1]) * uint16(c.G) / 0xff)
			row[i+2] = uint8(uint16(row[i+2]) * uint16(c.B) / 0xff)
			row[i+3] = uint8(uint16(row[i+3]) * uint16(c.A) / 0xff)
		}
	}
}

// line plots a one pixel Bresenham line, clipped to the frame
func (s *Surface) line(x0, y0, x1, y1 int, c color.RGBA) {
	b := s.frame.Bounds()
	dx := mathutil.AbsInt(x1 - x0)
	dy := -mathutil.AbsInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(b) {
			s.frame.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
