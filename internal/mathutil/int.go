package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// AbsInt returns the absolute value of an int.
func AbsInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
