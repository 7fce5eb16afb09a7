package geometry

import (
	"gonum.org/v1/gonum/floats"
)

// Point is a physical- or reference-space coordinate of dimension 2 or 3.
// Points are value data: callers treat them as immutable once read.
type Point []float64

// Dim returns the spatial dimension of the point.
func (p Point) Dim() int {
	return len(p)
}

// Clone returns an independent copy of the point.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Distance returns the Euclidean distance between a and b.
// Both points must have the same dimension.
func Distance(a, b Point) float64 {
	return floats.Distance(a, b, 2)
}

// Linspace generates n linearly spaced values between min and max inclusive.
// Returns nil for n < 2.
func Linspace(min, max float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	result := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := 0; i < n-1; i++ {
		result[i] = min + float64(i)*step
	}
	// Set the endpoint exactly rather than through accumulated arithmetic
	result[n-1] = max
	return result
}
