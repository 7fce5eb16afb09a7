// Package mapping provides the reference-to-physical cell mapping and the
// robust localization of physical points in reference-cell coordinates.
package mapping

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aquanum/layermesh/config"
	"github.com/aquanum/layermesh/element"
	"github.com/aquanum/layermesh/geometry"
)

// CellMapping maps between the unit reference cell [0,1]^dim and physical
// space for a given element. RealToUnit is only approximately and locally
// invertible and may fail for points on or outside the cell boundary.
type CellMapping interface {
	UnitToReal(c element.Cell, unit geometry.Point) (geometry.Point, error)
	RealToUnit(c element.Cell, p geometry.Point) (geometry.Point, error)
}

// unitTol is the slack allowed outside [0,1] before a converged reference
// coordinate is rejected as lying outside the cell.
const unitTol = 1e-10

// Q1 is the multilinear isoparametric mapping for quadrilateral and
// hexahedral cells: bilinear in 2D, trilinear in 3D. The inverse is computed
// by Newton iteration on the forward map.
type Q1 struct {
	MaxIter int
	Tol     float64
}

// NewQ1 builds a Q1 mapping with the given Newton policy.
func NewQ1(p config.Params) *Q1 {
	return &Q1{MaxIter: p.NewtonMaxIter, Tol: p.NewtonTol}
}

// shape evaluates the multilinear vertex shape function for vertex i of a
// 2^dim-vertex cell at unit coordinates u. Vertex i sits at the unit-cell
// corner whose d-th coordinate is bit d of i.
func shape(i, dim int, u geometry.Point) float64 {
	n := 1.0
	for d := 0; d < dim; d++ {
		if i>>d&1 == 1 {
			n *= u[d]
		} else {
			n *= 1 - u[d]
		}
	}
	return n
}

// shapeGrad evaluates the derivative of shape function i with respect to
// unit coordinate axis c.
func shapeGrad(i, dim, c int, u geometry.Point) float64 {
	g := 1.0
	for d := 0; d < dim; d++ {
		switch {
		case d == c && i>>d&1 == 1:
			// factor u[d] differentiates to 1
		case d == c:
			g = -g // factor 1-u[d] differentiates to -1
		case i>>d&1 == 1:
			g *= u[d]
		default:
			g *= 1 - u[d]
		}
	}
	return g
}

func checkCell(c element.Cell) (int, error) {
	dim := c.Dim()
	if dim != 2 && dim != 3 {
		return 0, fmt.Errorf("%w: cell dimension %d, want 2 or 3", element.ErrInvalidDimension, dim)
	}
	if c.NumVertices() != 1<<dim {
		return 0, fmt.Errorf("cell has %d vertices, want %d for dimension %d",
			c.NumVertices(), 1<<dim, dim)
	}
	return dim, nil
}

// UnitToReal evaluates the forward multilinear map at the given unit-cell
// coordinates.
func (q *Q1) UnitToReal(c element.Cell, unit geometry.Point) (geometry.Point, error) {
	dim, err := checkCell(c)
	if err != nil {
		return nil, err
	}
	if unit.Dim() != dim {
		return nil, fmt.Errorf("%w: unit point dimension %d, cell dimension %d",
			element.ErrInvalidDimension, unit.Dim(), dim)
	}
	x := make(geometry.Point, dim)
	for i := 0; i < 1<<dim; i++ {
		n := shape(i, dim, unit)
		v := c.Vertex(i)
		for d := 0; d < dim; d++ {
			x[d] += n * v[d]
		}
	}
	return x, nil
}

// RealToUnit inverts the forward map at the physical point p by Newton
// iteration started from the cell center. It fails when the Jacobian is
// singular, when the iteration does not converge within the budget, or when
// the converged coordinate lies outside the unit cell.
func (q *Q1) RealToUnit(c element.Cell, p geometry.Point) (geometry.Point, error) {
	dim, err := checkCell(c)
	if err != nil {
		return nil, err
	}
	if p.Dim() != dim {
		return nil, fmt.Errorf("%w: point dimension %d, cell dimension %d",
			element.ErrInvalidDimension, p.Dim(), dim)
	}

	unit := make(geometry.Point, dim)
	for d := range unit {
		unit[d] = 0.5
	}

	jac := mat.NewDense(dim, dim, nil)
	res := mat.NewVecDense(dim, nil)
	var du mat.VecDense

	for iter := 0; iter < q.MaxIter; iter++ {
		x, err := q.UnitToReal(c, unit)
		if err != nil {
			return nil, err
		}
		for d := 0; d < dim; d++ {
			res.SetVec(d, x[d]-p[d])
		}

		// jac[r][col] = d x_r / d u_col
		jac.Zero()
		for i := 0; i < 1<<dim; i++ {
			v := c.Vertex(i)
			for col := 0; col < dim; col++ {
				g := shapeGrad(i, dim, col, unit)
				for r := 0; r < dim; r++ {
					jac.Set(r, col, jac.At(r, col)+g*v[r])
				}
			}
		}

		if err := du.SolveVec(jac, res); err != nil {
			return nil, fmt.Errorf("singular Jacobian inverting cell mapping: %w", err)
		}
		for d := 0; d < dim; d++ {
			unit[d] -= du.AtVec(d)
		}
		if mat.Norm(&du, 2) < q.Tol {
			for d := 0; d < dim; d++ {
				if unit[d] < -unitTol || unit[d] > 1+unitTol {
					return nil, fmt.Errorf("point maps outside unit cell: coordinate %d is %g", d, unit[d])
				}
				unit[d] = math.Min(1, math.Max(0, unit[d]))
			}
			return unit, nil
		}
	}
	return nil, fmt.Errorf("inverse mapping did not converge in %d iterations", q.MaxIter)
}
