package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidDimension reports a geometric operation requested for an
// unsupported spatial dimension.
var ErrInvalidDimension = fmt.Errorf("invalid spatial dimension")

// TriangleArea computes the non-negative area of the triangle with vertices
// a, b, c.
//
// With project true, the vertices are flattened onto the horizontal plane by
// dropping all but the first two coordinates and the shoelace formula gives
// the projected area. This works for both 2D and 3D input points.
//
// With project false the exact 3D area is computed as half the magnitude of
// the cross product of the edge vectors (b-a) and (c-a). All three points
// must then be 3D; the non-projected 2D case is undefined and fails with
// ErrInvalidDimension.
func TriangleArea(a, b, c Point, project bool) (float64, error) {
	if project {
		if a.Dim() < 2 || b.Dim() < 2 || c.Dim() < 2 {
			return 0, fmt.Errorf("%w: projected triangle area needs at least 2 coordinates", ErrInvalidDimension)
		}
		area := 0.5 * (a[0]*(b[1]-c[1]) + b[0]*(c[1]-a[1]) + c[0]*(a[1]-b[1]))
		return math.Abs(area), nil
	}
	if a.Dim() != 3 || b.Dim() != 3 || c.Dim() != 3 {
		return 0, fmt.Errorf("%w: exact triangle area is defined for 3D points only, got dims %d/%d/%d",
			ErrInvalidDimension, a.Dim(), b.Dim(), c.Dim())
	}
	ab := r3.Sub(vec(b), vec(a))
	ac := r3.Sub(vec(c), vec(a))
	return 0.5 * r3.Norm(r3.Cross(ab, ac)), nil
}

func vec(p Point) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: p[2]}
}
