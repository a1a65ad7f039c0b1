package render

import (
	"math"

	"raycaster/internal/collision"
	"raycaster/internal/mathutil"
	"raycaster/internal/world"
)

// TextureNamer maps a struck tile tag to the name of its wall texture.
// An empty name selects the placeholder texture.
type TextureNamer interface {
	Texture(tag world.Tag) string
}

// Column is the projected wall slice for one screen column
type Column struct {
	Index      int
	Hit        collision.Hit
	DirX, DirY float64 // Ray direction, not normalised
	Distance   float64 // Fisheye corrected
	Height     float64
	Dst        Rect
	Src        Rect
	Texture    string
	Tint       uint8
}

// Projection is the wall pass of one frame
type Projection struct {
	Columns []Column
	// Depth holds the corrected wall distance for every column. It is
	// complete before Project returns.
	Depth []float64
}

// ColumnRay returns the ray direction for column i of columns. Column 0
// sits on the left edge of the view; the right edge is never reached. With
// an even count column columns/2 points straight ahead, with an odd count
// the middle column is turned half a column to the left.
func ColumnRay(vp Viewpoint, opts Options, i, columns int) (dx, dy float64) {
	lateral := opts.LateralExtent() * (2*float64(i)/float64(columns) - 1)
	dx = vp.GetForwardX()*opts.ForwardScale + vp.GetRightX()*lateral
	dy = vp.GetForwardY()*opts.ForwardScale + vp.GetRightY()*lateral
	return dx, dy
}

// Project casts one ray per screen column and builds the depth buffer
func Project(vp Viewpoint, grid *world.Grid, textures TextureNamer, opts Options) Projection {
	columns := opts.Columns()
	proj := Projection{
		Columns: make([]Column, columns),
		Depth:   make([]float64, columns),
	}

	intersector := collision.NewIntersector(grid)
	if opts.BackgroundDistance > 0 {
		intersector.BackgroundDistance = opts.BackgroundDistance
	}

	castColumn := func(i int) {
		col := projectColumn(vp, intersector, textures, opts, i, columns)
		proj.Columns[i] = col
		proj.Depth[i] = col.Distance
	}

	if opts.Pool != nil {
		// Each index writes only its own slots; ParallelFor joins before returning
		opts.Pool.ParallelFor(0, columns, castColumn)
	} else {
		for i := 0; i < columns; i++ {
			castColumn(i)
		}
	}

	return proj
}

func projectColumn(vp Viewpoint, in *collision.Intersector, textures TextureNamer, opts Options, i, columns int) Column {
	dx, dy := ColumnRay(vp, opts, i, columns)
	hit := in.Cast(vp.X, vp.Y, dx, dy)

	distance := hit.Distance / mathutil.Length(dx, dy)
	col := Column{
		Index:    i,
		Hit:      hit,
		DirX:     dx,
		DirY:     dy,
		Distance: distance,
	}
	if hit.Background {
		return col
	}

	step := opts.ColumnStep()
	col.Height = opts.ProjectionConstant / distance
	col.Dst = Rect{
		X: float64(i) * step,
		Y: (float64(opts.Height) - col.Height) / 2,
		W: step,
		H: col.Height,
	}

	size := float64(opts.TextureSize)
	col.Src = Rect{X: math.Floor(size * hit.Fraction), Y: 0, W: 1, H: size}
	col.Texture = textures.Texture(hit.Tag)

	bright := hit.Side == collision.SideTop || hit.Side == collision.SideRight
	col.Tint = opts.Shading.Brightness(bright, distance)
	return col
}

// Commands returns the textured wall slices in column order. Background
// columns draw nothing.
func (p Projection) Commands() []DrawCommand {
	cmds := make([]DrawCommand, 0, len(p.Columns))
	for _, col := range p.Columns {
		if col.Hit.Background {
			continue
		}
		cmds = append(cmds, TexturedRect{
			Texture: col.Texture,
			Src:     col.Src,
			Dst:     col.Dst,
			Tint:    Gray(col.Tint),
		})
	}
	return cmds
}
