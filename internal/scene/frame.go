package scene

import (
	"raycaster/internal/render"
)

// Frame is the complete output of one BuildFrame call
type Frame struct {
	Options    render.Options
	Commands   []render.DrawCommand
	Projection render.Projection
	Sprites    []render.SpriteProjection
}

// Depth returns the per-column wall distances the sprites were clipped against
func (f Frame) Depth() []float64 {
	return f.Projection.Depth
}

// VisibleSprites counts sprites that survived clipping
func (f Frame) VisibleSprites() int {
	n := 0
	for _, sp := range f.Sprites {
		if sp.Visible {
			n++
		}
	}
	return n
}

// BuildFrame renders the scene for a surface of width x height into draw
// commands: clear, floor, walls, minimap, sprites, then the viewpoint marker.
// The wall pass completes before any sprite is clipped against it.
func (s *Scene) BuildFrame(width, height int) Frame {
	opts := s.Settings.Render
	opts.Width = width
	opts.Height = height

	frame := Frame{Options: opts}
	cmds := []render.DrawCommand{
		render.Clear{Color: s.Settings.ClearColor},
		render.GradientRect{
			Dst: render.Rect{
				X: 0,
				Y: float64(height / 2),
				W: float64(width),
				H: float64(height - height/2),
			},
			Top:    s.Settings.FloorFar,
			Bottom: s.Settings.FloorNear,
		},
	}

	if s.Monitor != nil {
		timer := s.Monitor.StartProjection()
		frame.Projection = render.Project(s.Viewpoint, s.Grid, s.Materials, opts)
		timer.End()
	} else {
		frame.Projection = render.Project(s.Viewpoint, s.Grid, s.Materials, opts)
	}
	cmds = append(cmds, frame.Projection.Commands()...)

	if s.Settings.MinimapEnabled {
		cmds = append(cmds, render.MinimapCommands(s.Grid, s.Materials, s.Settings.MinimapCellSize, s.Settings.MinimapEmpty)...)
	}

	if s.Monitor != nil {
		timer := s.Monitor.StartSprites()
		frame.Sprites = render.Composite(s.Sprites, s.Viewpoint, frame.Projection.Depth, opts)
		timer.End()
	} else {
		frame.Sprites = render.Composite(s.Sprites, s.Viewpoint, frame.Projection.Depth, opts)
	}
	cmds = append(cmds, render.SpriteCommands(frame.Sprites)...)

	if s.Settings.MinimapEnabled {
		cmds = append(cmds, render.MarkerCommands(s.Viewpoint, s.Settings.MinimapCellSize, s.Settings.MarkerColor)...)
	}

	frame.Commands = cmds
	if s.Monitor != nil {
		s.Monitor.RecordFrameContents(len(frame.Projection.Columns), frame.VisibleSprites())
	}
	return frame
}
