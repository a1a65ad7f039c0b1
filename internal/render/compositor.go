package render

import (
	"math"

	"raycaster/internal/mathutil"
)

// Sprite is a static billboard in the world
type Sprite struct {
	X, Y    float64
	Texture string
}

// SpriteProjection is where a sprite lands on screen before and after
// clipping against the depth buffer
type SpriteProjection struct {
	Sprite  Sprite
	Depth   float64 // Forward distance divided by the forward scale
	CenterX float64
	Height  float64
	Naive   Rect // Unclipped screen rect, limited to the screen width
	Dst     Rect // Visible part
	Src     Rect
	Visible bool
}

// ProjectSprite places a sprite on screen and clips its span against the
// per-column wall depths. Sprites behind the viewpoint are not visible.
func ProjectSprite(s Sprite, vp Viewpoint, depth []float64, opts Options) SpriteProjection {
	sp := SpriteProjection{Sprite: s}

	forward, lateral := vp.ToViewSpace(s.X, s.Y)
	if forward <= 0 {
		return sp
	}

	width := float64(opts.Width)
	sp.Depth = forward / opts.ForwardScale
	sp.Height = opts.ProjectionConstant / sp.Depth
	sp.CenterX = width * (1 + lateral*opts.ForwardScale/(forward*opts.LateralExtent())) / 2

	half := sp.Height / 2
	left := math.Max(0, sp.CenterX-half)
	right := math.Min(sp.CenterX+half, width)
	top := (float64(opts.Height) - sp.Height) / 2
	if left >= right {
		return sp
	}
	sp.Naive = Rect{X: left, Y: top, W: right - left, H: sp.Height}

	columns := len(depth)
	step := opts.ColumnStep()

	// Walls nearer than the sprite hide it column by column from each edge
	first := int(left / step)
	for first < columns && left < right {
		if depth[first] > sp.Depth {
			break
		}
		first++
		left = float64(first) * step
	}

	last := mathutil.IntMin(int(math.Ceil(right/step))-1, columns-1)
	for last >= 0 && left < right {
		if depth[last] > sp.Depth {
			break
		}
		right = float64(last) * step
		last--
	}

	if left >= right {
		return sp
	}

	size := float64(opts.TextureSize)
	spriteLeft := sp.CenterX - half
	sp.Dst = Rect{X: left, Y: top, W: right - left, H: sp.Height}
	sp.Src = Rect{
		X: (left - spriteLeft) / sp.Height * size,
		Y: 0,
		W: (right - left) / sp.Height * size,
		H: size,
	}
	sp.Visible = true
	return sp
}

// Composite projects every sprite in list order. Sprites do not write to
// the depth buffer, so overlapping sprites are drawn in list order.
func Composite(sprites []Sprite, vp Viewpoint, depth []float64, opts Options) []SpriteProjection {
	out := make([]SpriteProjection, 0, len(sprites))
	for _, s := range sprites {
		out = append(out, ProjectSprite(s, vp, depth, opts))
	}
	return out
}

// SpriteCommands returns draw commands for the visible sprites
func SpriteCommands(projections []SpriteProjection) []DrawCommand {
	var cmds []DrawCommand
	for _, sp := range projections {
		if !sp.Visible {
			continue
		}
		cmds = append(cmds, TexturedRect{
			Texture: sp.Sprite.Texture,
			Src:     sp.Src,
			Dst:     sp.Dst,
			Tint:    White,
		})
	}
	return cmds
}
