package render

import (
	"math"

	"raycaster/internal/config"
	"raycaster/internal/mathutil"
	"raycaster/internal/threading/core"
)

// Shading is the two-level brightness table used for walls
type Shading struct {
	BrightBase      float64 // TOP and RIGHT sides
	DimBase         float64 // LEFT and BOTTOM sides
	Floor           float64 // Brightness at and beyond FalloffDistance
	FalloffDistance float64
}

// Brightness returns the wall tint level for a side seen at distance
func (s Shading) Brightness(bright bool, distance float64) uint8 {
	base := s.DimBase
	if bright {
		base = s.BrightBase
	}
	return uint8(mathutil.LerpClamped(base, s.Floor, distance/s.FalloffDistance))
}

// Options describes the screen and projection for one frame. The Column
// Projector and the Sprite Compositor must see the same Options.
type Options struct {
	Width, Height      int
	ColumnWidth        int     // Nominal column width in pixels
	ProjectionConstant float64 // K: wall height = K / distance
	FieldOfView        float64 // Horizontal, for a square screen
	ForwardScale       float64 // Length of the forward component of every column ray
	BackgroundDistance float64
	TextureSize        int
	Shading            Shading
	Pool               *core.WorkerPool // Optional; nil projects on the calling goroutine
}

// OptionsFromConfig builds frame options for a surface of width x height
func OptionsFromConfig(cfg *config.Config, width, height int) Options {
	return Options{
		Width:              width,
		Height:             height,
		ColumnWidth:        cfg.Graphics.ColumnWidth,
		ProjectionConstant: cfg.Graphics.ProjectionConstant,
		FieldOfView:        cfg.GetCameraFOV(),
		ForwardScale:       cfg.Camera.ForwardScale,
		BackgroundDistance: cfg.Graphics.BackgroundDistance,
		TextureSize:        cfg.Graphics.TextureSize,
		Shading: Shading{
			BrightBase:      cfg.Graphics.Shading.BrightBase,
			DimBase:         cfg.Graphics.Shading.DimBase,
			Floor:           cfg.Graphics.Shading.Floor,
			FalloffDistance: cfg.Graphics.Shading.FalloffDistance,
		},
	}
}

// Columns returns the number of screen columns, at least one
func (o Options) Columns() int {
	return mathutil.IntMax(1, o.Width/mathutil.IntMax(1, o.ColumnWidth))
}

// ColumnStep returns the exact width of one column so that the columns
// tile the whole screen
func (o Options) ColumnStep() float64 {
	return float64(o.Width) / float64(o.Columns())
}

// AspectRatio returns width / height
func (o Options) AspectRatio() float64 {
	return float64(o.Width) / float64(mathutil.IntMax(1, o.Height))
}

// LateralExtent is how far along the right vector the outermost column
// ray reaches
func (o Options) LateralExtent() float64 {
	return o.AspectRatio() * math.Tan(o.FieldOfView/2)
}
