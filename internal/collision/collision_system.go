package collision

import (
	"fmt"
	"math"

	"raycaster/internal/world"
)

// Blocked reports whether a circular footprint of the given radius centred
// on (x, y) overlaps a solid tile. Only the four corners of the bounding
// square are sampled, so movement code must test each axis on its own to
// slide along walls.
//
// A corner outside the grid is a caller bug and yields an error wrapping
// world.ErrOutOfBounds.
func Blocked(grid *world.Grid, x, y, radius float64) (bool, error) {
	for _, corner := range NewBoundingBox(x, y, radius).GetCorners() {
		tileX := int(math.Floor(corner.X))
		tileY := int(math.Floor(corner.Y))
		solid, err := grid.IsSolid(tileX, tileY)
		if err != nil {
			return false, fmt.Errorf("collision test at (%.3f, %.3f): %w", x, y, err)
		}
		if solid {
			return true, nil
		}
	}
	return false, nil
}
