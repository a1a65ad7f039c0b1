package collision

// Point is a position in grid-fractional coordinates
type Point struct {
	X, Y float64
}

// BoundingBox is the axis-aligned square standing in for a circular footprint
type BoundingBox struct {
	X, Y       float64 // Center
	HalfExtent float64
}

// NewBoundingBox creates the bounding square of a circle
func NewBoundingBox(x, y, radius float64) BoundingBox {
	return BoundingBox{X: x, Y: y, HalfExtent: radius}
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	return bb.X - bb.HalfExtent, bb.Y - bb.HalfExtent, bb.X + bb.HalfExtent, bb.Y + bb.HalfExtent
}

// GetCorners returns all four corners of the bounding box
func (bb BoundingBox) GetCorners() [4]Point {
	minX, minY, maxX, maxY := bb.GetBounds()

	return [4]Point{
		{X: maxX, Y: maxY}, // Bottom-right
		{X: minX, Y: maxY}, // Bottom-left
		{X: maxX, Y: minY}, // Top-right
		{X: minX, Y: minY}, // Top-left
	}
}
