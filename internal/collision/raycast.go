package collision

import (
	"math"

	"raycaster/internal/mathutil"
	"raycaster/internal/world"
)

// Side is the face of a tile a ray struck, named after the direction the
// ray was travelling: a ray heading towards -x strikes a LEFT wall.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideLeft
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	case SideBottom:
		return "bottom"
	}
	return "unknown"
}

// Vertical reports whether the side lies on a vertical grid line
func (s Side) Vertical() bool {
	return s == SideLeft || s == SideRight
}

// DefaultBackgroundDistance is the distance reported for rays that leave
// the grid without striking anything.
const DefaultBackgroundDistance = 100.0

// Hit is the result of one ray intersection
type Hit struct {
	Distance   float64   // Straight-line distance from the origin, not corrected for fisheye
	Tag        world.Tag // Tag of the struck tile
	Side       Side
	Fraction   float64 // Fractional position along the struck edge, in [0, 1)
	X, Y       float64 // Hit point
	TileX      int     // Struck tile
	TileY      int
	Background bool // No tile was struck; only Distance is meaningful
}

// Intersector casts rays against one grid
type Intersector struct {
	Grid               *world.Grid
	BackgroundDistance float64
}

// NewIntersector creates an intersector reporting DefaultBackgroundDistance for misses
func NewIntersector(grid *world.Grid) *Intersector {
	return &Intersector{Grid: grid, BackgroundDistance: DefaultBackgroundDistance}
}

// Intersect is Intersector.Cast with the default background distance
func Intersect(grid *world.Grid, ox, oy, dx, dy float64) Hit {
	return NewIntersector(grid).Cast(ox, oy, dx, dy)
}

// sweepHit is a candidate from one of the two sweeps
type sweepHit struct {
	x, y         float64
	tileX, tileY int
	squaredDist  float64
}

var noHit = sweepHit{squaredDist: math.Inf(1)}

// Cast finds the nearest solid tile boundary along (dx, dy) from (ox, oy).
// Vertical and horizontal grid lines are swept independently and the
// nearer candidate wins; on an exact tie the vertical line is kept.
// The direction need not be normalised.
func (in *Intersector) Cast(ox, oy, dx, dy float64) Hit {
	vertical, stepX := in.sweepVertical(ox, oy, dx, dy)
	horizontal, stepY := in.sweepHorizontal(ox, oy, dx, dy)

	if math.IsInf(vertical.squaredDist, 1) && math.IsInf(horizontal.squaredDist, 1) {
		return Hit{Distance: in.BackgroundDistance, Background: true}
	}

	if vertical.squaredDist <= horizontal.squaredDist {
		side := SideRight
		if stepX < 0 {
			side = SideLeft
		}
		return in.hit(vertical, side, vertical.y)
	}

	side := SideBottom
	if stepY < 0 {
		side = SideTop
	}
	return in.hit(horizontal, side, horizontal.x)
}

func (in *Intersector) hit(c sweepHit, side Side, along float64) Hit {
	// Sweeps only record in-bounds tiles
	tag, _ := in.Grid.Tag(c.tileX, c.tileY)
	return Hit{
		Distance: math.Sqrt(c.squaredDist),
		Tag:      tag,
		Side:     side,
		Fraction: along - math.Floor(along),
		X:        c.x,
		Y:        c.y,
		TileX:    c.tileX,
		TileY:    c.tileY,
	}
}

// sweepVertical walks the vertical grid lines x = const ahead of the origin
func (in *Intersector) sweepVertical(ox, oy, dx, dy float64) (sweepHit, int) {
	step := 1
	if dx < 0 {
		step = -1
	}
	if dx == 0 {
		return noHit, step
	}

	width, height := in.Grid.Width(), in.Grid.Height()
	slope := dy / dx

	x := int(math.Floor(ox))
	// The tile behind a line is x when heading +x and x-1 when heading -x
	behind := 0
	if step > 0 {
		x++
	} else {
		behind = -1
	}

	for ; x+behind >= 0 && x+behind < width; x += step {
		fy := slope*(float64(x)-ox) + oy
		if !(fy >= 0 && fy < float64(height)) {
			break
		}
		tileX, tileY := x+behind, int(fy)
		if solid, _ := in.Grid.IsSolid(tileX, tileY); solid {
			return sweepHit{
				x:           float64(x),
				y:           fy,
				tileX:       tileX,
				tileY:       tileY,
				squaredDist: mathutil.SquaredLength(float64(x)-ox, fy-oy),
			}, step
		}
	}
	return noHit, step
}

// sweepHorizontal walks the horizontal grid lines y = const ahead of the origin
func (in *Intersector) sweepHorizontal(ox, oy, dx, dy float64) (sweepHit, int) {
	step := 1
	if dy < 0 {
		step = -1
	}
	if dy == 0 {
		return noHit, step
	}

	width, height := in.Grid.Width(), in.Grid.Height()
	slope := dx / dy

	y := int(math.Floor(oy))
	behind := 0
	if step > 0 {
		y++
	} else {
		behind = -1
	}

	for ; y+behind >= 0 && y+behind < height; y += step {
		fx := slope*(float64(y)-oy) + ox
		if !(fx >= 0 && fx < float64(width)) {
			break
		}
		tileX, tileY := int(fx), y+behind
		if solid, _ := in.Grid.IsSolid(tileX, tileY); solid {
			return sweepHit{
				x:           fx,
				y:           float64(y),
				tileX:       tileX,
				tileY:       tileY,
				squaredDist: mathutil.SquaredLength(fx-ox, float64(y)-oy),
			}, step
		}
	}
	return noHit, step
}
