// Package recharge computes the geometric weights that convert a vertically
// applied flux rate (e.g. groundwater recharge from precipitation) into the
// correct flux across a possibly tilted boundary face.
package recharge

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/aquanum/layermesh/config"
	"github.com/aquanum/layermesh/element"
	"github.com/aquanum/layermesh/geometry"
)

// ErrDegenerateFace reports a face whose true area vanishes, for which the
// projected-to-true area ratio is undefined.
var ErrDegenerateFace = fmt.Errorf("degenerate face")

// Calculator derives per-face weights as the ratio of a face's
// horizontal-plane projection to its true measure. The weight is 1 for a
// horizontal face and shrinks toward 0 as the face tilts toward vertical.
type Calculator struct {
	areaTol float64
	log     *zap.Logger
}

// NewCalculator builds a Calculator with the given degenerate-area tolerance
// policy. A nil log disables logging.
func NewCalculator(p config.Params, log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{areaTol: p.AreaTol, log: log}
}

// Weight returns the scale factor for a vertically applied flux over the
// given face of cell c.
//
// In 2D the face is an edge and the weight is the ratio of its horizontal
// extent to its length. In 3D the face is a quadrilateral split along the
// fixed diagonal into triangles (v1,v2,v4) and (v1,v4,v3); the split must
// match the face vertex ordering convention, so both triangles are taken in
// that order for the true and the projected area alike.
//
// For dimensions outside {2,3} the weight defaults to 1; this permissive
// fallback is logged as a warning rather than validated away, since a 2D/3D
// mesh never reaches it.
func (w *Calculator) Weight(c element.Cell, face int) (float64, error) {
	dim := c.Dim()
	switch dim {
	case 2:
		v, err := c.FaceVertices(face)
		if err != nil {
			return 0, err
		}
		if len(v) != 2 {
			return 0, fmt.Errorf("2D face %d has %d vertices, want 2", face, len(v))
		}
		actual := geometry.Distance(v[0], v[1])
		if actual <= w.areaTol {
			return 0, fmt.Errorf("%w: face %d has zero length", ErrDegenerateFace, face)
		}
		return math.Abs(v[1][0]-v[0][0]) / actual, nil

	case 3:
		v, err := c.FaceVertices(face)
		if err != nil {
			return 0, err
		}
		if len(v) != 4 {
			return 0, fmt.Errorf("3D face %d has %d vertices, want 4", face, len(v))
		}
		trueArea, err := quadArea(v, false)
		if err != nil {
			return 0, err
		}
		if trueArea <= w.areaTol {
			return 0, fmt.Errorf("%w: face %d has zero area", ErrDegenerateFace, face)
		}
		projArea, err := quadArea(v, true)
		if err != nil {
			return 0, err
		}
		return projArea / trueArea, nil

	default:
		w.log.Warn("face weight requested for unsupported dimension, defaulting to 1",
			zap.Int("dim", dim), zap.Int("face", face))
		return 1, nil
	}
}

// quadArea sums the two triangles of the fixed diagonal split of a
// quadrilateral given as v[0..3] in face vertex order.
func quadArea(v []geometry.Point, project bool) (float64, error) {
	t1, err := geometry.TriangleArea(v[0], v[1], v[3], project)
	if err != nil {
		return 0, err
	}
	t2, err := geometry.TriangleArea(v[0], v[3], v[2], project)
	if err != nil {
		return 0, err
	}
	return t1 + t2, nil
}
