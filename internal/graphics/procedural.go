package graphics

import (
	"image"
	"image/color"
	"math"

	"raycaster/internal/mathutil"
)

// generators build the textures shipped with the default level when no
// image file overrides them
var generators = map[string]func(size int) *image.RGBA{
	"terracotta":  Terracotta,
	"weird_stone": WeirdStone,
	"red_stone":   RedStone,
	"leopard":     Leopard,
	"magic_ball":  MagicBall,
	"cat":         Cat,
}

// noise returns a repeatable value in [0, 1) for a lattice point
func noise(x, y, seed int) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + uint32(seed)*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h&0xffff) / 65536
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(mathutil.Clamp(0, 255, float64(v)*f))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// bricks draws staggered bricks separated by mortar lines
func bricks(size int, brick, mortar color.RGBA, rows, cols, seed int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rowH := mathutil.IntMax(1, size/rows)
	colW := mathutil.IntMax(1, size/cols)
	line := mathutil.IntMax(1, size/64)

	for y := 0; y < size; y++ {
		row := y / rowH
		offset := 0
		if row%2 == 1 {
			offset = colW / 2
		}
		for x := 0; x < size; x++ {
			bx := (x + offset) % size
			if y%rowH < line || bx%colW < line {
				img.SetRGBA(x, y, mortar)
				continue
			}
			tone := 0.85 + 0.15*noise(bx/colW, row, seed) + 0.1*noise(x, y, seed+1)
			img.SetRGBA(x, y, shade(brick, tone))
		}
	}
	return img
}

// Terracotta is orange brick
func Terracotta(size int) *image.RGBA {
	return bricks(size, color.RGBA{0xd6, 0x66, 0x21, 0xff}, color.RGBA{0x6b, 0x4a, 0x32, 0xff}, 8, 4, 1)
}

// RedStone is large dark red blocks
func RedStone(size int) *image.RGBA {
	return bricks(size, color.RGBA{0x8b, 0x10, 0x10, 0xff}, color.RGBA{0x3a, 0x00, 0x00, 0xff}, 4, 2, 7)
}

// WeirdStone is pink cobbles from a cellular pattern
func WeirdStone(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	base := color.RGBA{0xb6, 0x72, 0x7b, 0xff}
	cells := 5
	cell := float64(size) / float64(cells)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := int(float64(x)/cell), int(float64(y)/cell)
			nearest, second := math.Inf(1), math.Inf(1)
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					gx, gy := cx+ox, cy+oy
					// Wrap so the texture tiles
					wx, wy := (gx+cells)%cells, (gy+cells)%cells
					px := (float64(gx) + noise(wx, wy, 3)) * cell
					py := (float64(gy) + noise(wx, wy, 4)) * cell
					d := mathutil.Length(float64(x)-px, float64(y)-py)
					if d < nearest {
						nearest, second = d, nearest
					} else if d < second {
						second = d
					}
				}
			}
			edge := (second - nearest) / cell
			tone := mathutil.LerpClamped(0.45, 1.1, edge*4)
			img.SetRGBA(x, y, shade(base, tone))
		}
	}
	return img
}

// Leopard is tan fur with dark rosettes
func Leopard(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fur := color.RGBA{0xc9, 0x8f, 0x72, 0xff}
	spot := color.RGBA{0x3b, 0x24, 0x14, 0xff}
	cells := 6
	cell := float64(size) / float64(cells)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := int(float64(x)/cell), int(float64(y)/cell)
			sx := (float64(cx) + 0.3 + 0.4*noise(cx, cy, 5)) * cell
			sy := (float64(cy) + 0.3 + 0.4*noise(cx, cy, 6)) * cell
			r := cell * (0.2 + 0.12*noise(cx, cy, 7))
			d := mathutil.Length(float64(x)-sx, float64(y)-sy)

			switch {
			case d < r*0.55:
				img.SetRGBA(x, y, shade(fur, 0.8))
			case d < r:
				img.SetRGBA(x, y, spot)
			default:
				img.SetRGBA(x, y, shade(fur, 0.9+0.15*noise(x, y, 8)))
			}
		}
	}
	return img
}

// MagicBall is a glowing orb on a transparent background
func MagicBall(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := float64(size) * 0.3
	core := color.RGBA{0xc0, 0xe8, 0xff, 0xff}
	glow := color.RGBA{0x30, 0x60, 0xff, 0xff}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := mathutil.Length(float64(x)+0.5-center, float64(y)+0.5-center) / radius
			if d > 1 {
				continue
			}
			t := d * d
			c := color.RGBA{
				R: uint8(mathutil.Lerp(float64(core.R), float64(glow.R), t)),
				G: uint8(mathutil.Lerp(float64(core.G), float64(glow.G), t)),
				B: uint8(mathutil.Lerp(float64(core.B), float64(glow.B), t)),
				A: 0xff,
			}
			img.SetRGBA(x, y, c)
		}
	}
	// Sprites sit on the floor: keep the orb in the lower part
	return shiftDown(img, size/5)
}

// Cat is a seated black cat silhouette on a transparent background
func Cat(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fs := float64(size)
	black := color.RGBA{0x18, 0x18, 0x1c, 0xff}
	eye := color.RGBA{0xe8, 0xd0, 0x30, 0xff}

	inEllipse := func(x, y, cx, cy, rx, ry float64) bool {
		dx, dy := (x-cx)/rx, (y-cy)/ry
		return dx*dx+dy*dy <= 1
	}
	inEar := func(x, y, tipX float64) bool {
		top, bottom := fs*0.28, fs*0.42
		if y < top || y > bottom {
			return false
		}
		half := (y - top) / (bottom - top) * fs * 0.08
		return math.Abs(x-tipX) <= half
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			switch {
			case inEllipse(px, py, fs*0.36, fs*0.52, fs*0.035, fs*0.03),
				inEllipse(px, py, fs*0.52, fs*0.52, fs*0.035, fs*0.03):
				img.SetRGBA(x, y, eye)
			case inEllipse(px, py, fs*0.44, fs*0.52, fs*0.16, fs*0.13),
				inEllipse(px, py, fs*0.5, fs*0.8, fs*0.22, fs*0.2),
				inEar(px, py, fs*0.33),
				inEar(px, py, fs*0.55),
				inEllipse(px, py, fs*0.74, fs*0.92, fs*0.14, fs*0.04):
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

// Placeholder is a magenta and black checkerboard
func Placeholder(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	check := mathutil.IntMax(1, size/8)
	magenta := color.RGBA{0xff, 0x00, 0xff, 0xff}
	black := color.RGBA{0x00, 0x00, 0x00, 0xff}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/check+y/check)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}

func shiftDown(img *image.RGBA, dy int) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y-dy; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetRGBA(x, y+dy, img.RGBAAt(x, y))
		}
	}
	return out
}
