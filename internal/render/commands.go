package render

import (
	"image/color"
)

// Rect is a rectangle in floating point pixel or texel coordinates
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rect covers no area
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Gray returns an opaque grey of the given brightness
func Gray(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 0xff}
}

// White is the neutral tint
var White = color.RGBA{0xff, 0xff, 0xff, 0xff}

// DrawCommand is one instruction for a presentation surface
type DrawCommand interface {
	drawCommand()
}

// Clear fills the whole surface
type Clear struct {
	Color color.RGBA
}

// FillRect fills a rectangle with a solid colour
type FillRect struct {
	Dst   Rect
	Color color.RGBA
}

// GradientRect fills a rectangle with a vertical gradient from Top to Bottom
type GradientRect struct {
	Dst    Rect
	Top    color.RGBA
	Bottom color.RGBA
}

// TexturedRect draws the Src region of a named texture stretched over Dst,
// multiplied by Tint. The tint belongs to this call only.
type TexturedRect struct {
	Texture string
	Src     Rect
	Dst     Rect
	Tint    color.RGBA
}

// StrokeRect outlines a rectangle one pixel wide
type StrokeRect struct {
	Dst   Rect
	Color color.RGBA
}

// Line draws a one pixel line
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          color.RGBA
}

func (Clear) drawCommand()        {}
func (FillRect) drawCommand()     {}
func (GradientRect) drawCommand() {}
func (TexturedRect) drawCommand() {}
func (StrokeRect) drawCommand()   {}
func (Line) drawCommand()         {}

// Surface is anything that can execute draw commands and show the result
type Surface interface {
	Draw(cmd DrawCommand)
	Present()
}

// Submit draws every command in order and presents the surface
func Submit(s Surface, cmds []DrawCommand) {
	for _, cmd := range cmds {
		s.Draw(cmd)
	}
	s.Present()
}

// Recorder is a Surface that keeps the commands it receives
type Recorder struct {
	Commands []DrawCommand
	Presents int
}

func (r *Recorder) Draw(cmd DrawCommand) {
	r.Commands = append(r.Commands, cmd)
}

func (r *Recorder) Present() {
	r.Presents++
}
