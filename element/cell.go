package element

import (
	"fmt"

	"github.com/aquanum/layermesh/geometry"
)

// Cell is an opaque handle to a mesh element. The numerical routines in this
// module never construct or mutate cells supplied by a surrounding
// finite-element framework; they only query geometry through this interface.
type Cell interface {
	Dim() int
	NumVertices() int
	Vertex(i int) geometry.Point
	NumFaces() int

	// FaceVertices returns the vertices of the given face in the element's
	// vertex ordering convention: 2 vertices for an edge face in 2D, 4
	// vertices for a quadrilateral face in 3D.
	FaceVertices(face int) ([]geometry.Point, error)
}

// Vertex ordering follows the lexicographic convention: vertex i of a
// 2^dim-vertex element sits at unit-cell corner (i&1, i>>1&1, i>>2&1).
// Faces are numbered -x, +x, -y, +y, -z, +z; within each face the vertices
// follow the same lexicographic order over the face's free axes, so the
// face diagonal runs from the first listed vertex to the last.
var (
	quadFaceVertices = [4][2]int{
		{0, 2}, {1, 3}, {0, 1}, {2, 3},
	}
	hexFaceVertices = [6][4]int{
		{0, 2, 4, 6}, {1, 3, 5, 7},
		{0, 1, 4, 5}, {2, 3, 6, 7},
		{0, 1, 2, 3}, {4, 5, 6, 7},
	}
)

// TopFace returns the face index of the face on the positive side of the
// vertical axis (the last coordinate axis) for the given dimension.
func TopFace(dim int) int {
	return 2*dim - 1
}

// BottomFace returns the face index of the face on the negative side of the
// vertical axis for the given dimension.
func BottomFace(dim int) int {
	return 2*dim - 2
}

// QuadCell is a 4-vertex quadrilateral element with explicit vertex
// coordinates, for callers without a surrounding mesh framework.
type QuadCell struct {
	V [4]geometry.Point
}

// NewQuadCell builds a QuadCell from 4 two-dimensional vertices in
// lexicographic order.
func NewQuadCell(v0, v1, v2, v3 geometry.Point) (*QuadCell, error) {
	c := &QuadCell{V: [4]geometry.Point{v0, v1, v2, v3}}
	for i, v := range c.V {
		if v.Dim() != 2 {
			return nil, fmt.Errorf("quad vertex %d has dimension %d, want 2", i, v.Dim())
		}
	}
	return c, nil
}

func (c *QuadCell) Dim() int                    { return 2 }
func (c *QuadCell) NumVertices() int            { return 4 }
func (c *QuadCell) Vertex(i int) geometry.Point { return c.V[i] }
func (c *QuadCell) NumFaces() int               { return 4 }

func (c *QuadCell) FaceVertices(face int) ([]geometry.Point, error) {
	if face < 0 || face >= 4 {
		return nil, fmt.Errorf("%w: face %d of quad, want [0,3]", ErrInvalidIndex, face)
	}
	fv := quadFaceVertices[face]
	return []geometry.Point{c.V[fv[0]], c.V[fv[1]]}, nil
}

// HexCell is an 8-vertex hexahedral element with explicit vertex
// coordinates.
type HexCell struct {
	V [8]geometry.Point
}

// NewHexCell builds a HexCell from 8 three-dimensional vertices in
// lexicographic order.
func NewHexCell(v [8]geometry.Point) (*HexCell, error) {
	for i, p := range v {
		if p.Dim() != 3 {
			return nil, fmt.Errorf("hex vertex %d has dimension %d, want 3", i, p.Dim())
		}
	}
	return &HexCell{V: v}, nil
}

func (c *HexCell) Dim() int                    { return 3 }
func (c *HexCell) NumVertices() int            { return 8 }
func (c *HexCell) Vertex(i int) geometry.Point { return c.V[i] }
func (c *HexCell) NumFaces() int               { return 6 }

func (c *HexCell) FaceVertices(face int) ([]geometry.Point, error) {
	if face < 0 || face >= 6 {
		return nil, fmt.Errorf("%w: face %d of hex, want [0,5]", ErrInvalidIndex, face)
	}
	fv := hexFaceVertices[face]
	out := make([]geometry.Point, 4)
	for i, vi := range fv {
		out[i] = c.V[vi]
	}
	return out, nil
}
