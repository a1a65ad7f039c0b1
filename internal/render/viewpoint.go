package render

import (
	"math"
)

// Viewpoint is the moving observer: a position in grid-fractional
// coordinates and a heading in radians. The renderer only reads it.
type Viewpoint struct {
	X, Y  float64
	Angle float64
}

// GetForwardX returns the X component of the forward direction vector
func (v Viewpoint) GetForwardX() float64 {
	return math.Cos(v.Angle)
}

// GetForwardY returns the Y component of the forward direction vector
func (v Viewpoint) GetForwardY() float64 {
	return math.Sin(v.Angle)
}

// GetRightX returns the X component of the right direction vector
func (v Viewpoint) GetRightX() float64 {
	return -math.Sin(v.Angle)
}

// GetRightY returns the Y component of the right direction vector
func (v Viewpoint) GetRightY() float64 {
	return math.Cos(v.Angle)
}

// GetPosition returns the viewpoint's current position
func (v Viewpoint) GetPosition() (float64, float64) {
	return v.X, v.Y
}

// SetPosition sets the viewpoint's position
func (v *Viewpoint) SetPosition(x, y float64) {
	v.X = x
	v.Y = y
}

// Rotate turns the viewpoint by the given angle
func (v *Viewpoint) Rotate(angle float64) {
	v.Angle += angle
}

// ToViewSpace rotates a world position into viewpoint-relative space,
// returning its distance along the forward axis and its offset along the
// right axis.
func (v Viewpoint) ToViewSpace(x, y float64) (forward, lateral float64) {
	ox, oy := x-v.X, y-v.Y
	forward = ox*v.GetForwardX() + oy*v.GetForwardY()
	lateral = ox*v.GetRightX() + oy*v.GetRightY()
	return forward, lateral
}
