package render

import (
	"image/color"

	"raycaster/internal/world"
)

// MinimapColorer maps a tile tag to its minimap colour
type MinimapColorer interface {
	MinimapColor(tag world.Tag, empty color.RGBA) color.RGBA
}

// MinimapCommands draws one filled cell per grid tile in the top-left corner
func MinimapCommands(grid *world.Grid, colors MinimapColorer, cellSize int, empty color.RGBA) []DrawCommand {
	cmds := make([]DrawCommand, 0, grid.Width()*grid.Height())
	size := float64(cellSize)

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tag, _ := grid.Tag(x, y)
			cmds = append(cmds, FillRect{
				Dst:   Rect{X: float64(x) * size, Y: float64(y) * size, W: size, H: size},
				Color: colors.MinimapColor(tag, empty),
			})
		}
	}
	return cmds
}

// MarkerCommands outlines the viewpoint on the minimap and draws a line one
// grid unit long in the facing direction
func MarkerCommands(vp Viewpoint, cellSize int, c color.RGBA) []DrawCommand {
	size := float64(cellSize)
	px, py := vp.X*size, vp.Y*size

	return []DrawCommand{
		StrokeRect{
			Dst:   Rect{X: px - size/2, Y: py - size/2, W: size, H: size},
			Color: c,
		},
		Line{
			X1:    px,
			Y1:    py,
			X2:    (vp.X + vp.GetForwardX()) * size,
			Y2:    (vp.Y + vp.GetForwardY()) * size,
			Color: c,
		},
	}
}
