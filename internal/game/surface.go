package game

import (
	"image"
	"image/color"

	"raycaster/internal/graphics"
	"raycaster/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface executes draw commands on an ebiten screen image. Textures are
// uploaded once on first use and kept for the rest of the run.
type Surface struct {
	screen   *ebiten.Image
	textures *graphics.TextureManager
	images   map[string]*ebiten.Image

	// Gradients sample the centre of a white image so edge texels
	// never bleed into the interpolation
	whiteImg *ebiten.Image
	whiteSub *ebiten.Image

	vertices [4]ebiten.Vertex
}

var quadIndices = []uint16{0, 1, 2, 1, 2, 3}

// NewSurface creates a surface drawing textures from tm
func NewSurface(tm *graphics.TextureManager) *Surface {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Surface{
		textures: tm,
		images:   make(map[string]*ebiten.Image),
		whiteImg: white,
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Begin directs the following draw commands at screen
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
}

// Present is a no-op; ebiten shows the screen once Draw returns
func (s *Surface) Present() {}

// Draw executes one command
func (s *Surface) Draw(cmd render.DrawCommand) {
	if s.screen == nil {
		return
	}

	switch c := cmd.(type) {
	case render.Clear:
		s.screen.Fill(c.Color)
	case render.FillRect:
		vector.DrawFilledRect(s.screen, float32(c.Dst.X), float32(c.Dst.Y), float32(c.Dst.W), float32(c.Dst.H), c.Color, false)
	case render.GradientRect:
		s.drawGradient(c)
	case render.TexturedRect:
		s.drawTextured(c)
	case render.StrokeRect:
		vector.StrokeRect(s.screen, float32(c.Dst.X), float32(c.Dst.Y), float32(c.Dst.W), float32(c.Dst.H), 1, c.Color, false)
	case render.Line:
		vector.StrokeLine(s.screen, float32(c.X1), float32(c.Y1), float32(c.X2), float32(c.Y2), 1, c.Color, false)
	}
}

func (s *Surface) image(name string) *ebiten.Image {
	if img, ok := s.images[name]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.textures.Get(name))
	s.images[name] = img
	return img
}

// drawTextured maps the source rect onto the destination with float
// texture coordinates, so fractional sprite slices keep their proportions
func (s *Surface) drawTextured(c render.TexturedRect) {
	if c.Dst.Empty() || c.Src.Empty() {
		return
	}
	img := s.image(c.Texture)
	s.setQuad(c.Dst, c.Src, c.Tint, c.Tint)
	s.screen.DrawTriangles(s.vertices[:], quadIndices, img, &ebiten.DrawTrianglesOptions{})
}

func (s *Surface) drawGradient(c render.GradientRect) {
	if c.Dst.Empty() {
		return
	}
	src := render.Rect{X: 1, Y: 1, W: 1, H: 1}
	s.setQuad(c.Dst, src, c.Top, c.Bottom)
	s.screen.DrawTriangles(s.vertices[:], quadIndices, s.whiteSub, &ebiten.DrawTrianglesOptions{})
}

// setQuad fills the vertex buffer: top-left, top-right, bottom-left,
// bottom-right, with top colouring the upper pair
func (s *Surface) setQuad(dst, src render.Rect, top, bottom color.RGBA) {
	xs := [2]float64{dst.X, dst.Right()}
	ys := [2]float64{dst.Y, dst.Bottom()}
	us := [2]float64{src.X, src.Right()}
	vs := [2]float64{src.Y, src.Bottom()}
	colors := [2]color.RGBA{top, bottom}

	for row := 0; row < 2; row++ {
		r, g, b, a := scale(colors[row])
		for col := 0; col < 2; col++ {
			s.vertices[row*2+col] = ebiten.Vertex{
				DstX:   float32(xs[col]),
				DstY:   float32(ys[row]),
				SrcX:   float32(us[col]),
				SrcY:   float32(vs[row]),
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			}
		}
	}
}

func scale(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
