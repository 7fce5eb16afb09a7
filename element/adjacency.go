package element

import (
	"fmt"
)

var (
	// ErrInvalidIndex reports a local node or face index outside the valid
	// range for the element.
	ErrInvalidIndex = fmt.Errorf("invalid local index")

	// ErrInvalidDimension reports an adjacency query for a dimension other
	// than 2 or 3.
	ErrInvalidDimension = fmt.Errorf("invalid element dimension")
)

// Structured reference-element connectivity, enumerated as constant data.
//
// verticalNeighbor maps each local node to the single node directly above
// or below it along the vertical (last) axis. The table is an involution.
//
// edgeNeighbors maps each local node to all nodes sharing a reference-cell
// edge with it: 2 per node for the quadrilateral (the 0-1-3-2 cycle), 3 per
// node for the hexahedron.
var (
	verticalNeighbor2D = [4]int{2, 3, 0, 1}
	verticalNeighbor3D = [8]int{4, 5, 6, 7, 0, 1, 2, 3}

	edgeNeighbors2D = [4][]int{
		{1, 2},
		{0, 3},
		{0, 3},
		{1, 2},
	}
	edgeNeighbors3D = [8][]int{
		{1, 2, 4},
		{0, 3, 5},
		{0, 3, 6},
		{1, 2, 7},
		{0, 5, 6},
		{1, 4, 7},
		{2, 4, 7},
		{3, 5, 6},
	}
)

func checkNode(dim, node int) error {
	switch dim {
	case 2, 3:
	default:
		return fmt.Errorf("%w: dimension %d, want 2 or 3", ErrInvalidDimension, dim)
	}
	if node < 0 || node >= 1<<dim {
		return fmt.Errorf("%w: node %d for dimension %d, want [0,%d]",
			ErrInvalidIndex, node, dim, 1<<dim-1)
	}
	return nil
}

// VerticalNeighbor returns the local node index directly above or below the
// given node along the vertical axis of the reference quadrilateral (dim 2)
// or hexahedron (dim 3).
func VerticalNeighbor(dim, node int) (int, error) {
	if err := checkNode(dim, node); err != nil {
		return 0, err
	}
	if dim == 2 {
		return verticalNeighbor2D[node], nil
	}
	return verticalNeighbor3D[node], nil
}

// EdgeNeighbors returns all local node indices sharing a reference-cell edge
// with the given node. The returned slice is shared constant data; callers
// must not modify it.
func EdgeNeighbors(dim, node int) ([]int, error) {
	if err := checkNode(dim, node); err != nil {
		return nil, err
	}
	if dim == 2 {
		return edgeNeighbors2D[node], nil
	}
	return edgeNeighbors3D[node], nil
}
