package mathutil

import "math"

// SquaredLength returns a*a + b*b.
func SquaredLength(a, b float64) float64 {
	return a*a + b*b
}

// Length returns the euclidean length of the vector (a, b).
func Length(a, b float64) float64 {
	return math.Sqrt(SquaredLength(a, b))
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the range spanned by a and b. The bounds may be given
// in either order.
func Clamp(a, b, v float64) float64 {
	return math.Min(math.Max(math.Min(a, b), v), math.Max(a, b))
}

// LerpClamped is Lerp whose result never leaves the range spanned by a and b.
func LerpClamped(a, b, t float64) float64 {
	return Clamp(a, b, Lerp(a, b, t))
}
