// Package export walks an externally supplied mesh and degree-of-freedom
// layout and collects the node points into a deduplicated table, for writing
// mesh snapshots consumed by post-processing tools.
package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/aquanum/layermesh/geometry"
)

// DOFMesh is the mesh and degree-of-freedom view supplied by the surrounding
// finite-element framework. Cell indices run [0, NumCells); only cells for
// which OwnsCell reports true are visited, so a distributed caller passes
// its locally owned partition.
type DOFMesh interface {
	Dim() int
	NumCells() int
	OwnsCell(k int) bool

	// CellNodes returns the physical node points of cell k.
	CellNodes(k int) ([]geometry.Point, error)

	// CellDOFs returns, for each node of cell k, the global degree-of-freedom
	// index per coordinate component (length Dim per node, matching the node
	// order of CellNodes).
	CellDOFs(k int) ([][]int, error)
}

// PointEntry pairs a dense output counter with a node point.
type PointEntry struct {
	Counter int
	P       geometry.Point
}

// PointTable maps the vertical-component DOF index of each distinct node to
// its counter and coordinates. Nodes shared between cells appear once.
type PointTable struct {
	Dim   int
	ByDOF map[int]PointEntry
}

// CollectPoints traverses the locally owned cells of m and deduplicates
// their nodes by the DOF index of the last (vertical) coordinate component,
// assigning counters in first-seen order.
func CollectPoints(m DOFMesh) (*PointTable, error) {
	dim := m.Dim()
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("mesh dimension %d, want 2 or 3", dim)
	}
	t := &PointTable{Dim: dim, ByDOF: make(map[int]PointEntry)}
	counter := 0
	for k := 0; k < m.NumCells(); k++ {
		if !m.OwnsCell(k) {
			continue
		}
		nodes, err := m.CellNodes(k)
		if err != nil {
			return nil, fmt.Errorf("reading nodes of cell %d: %w", k, err)
		}
		dofs, err := m.CellDOFs(k)
		if err != nil {
			return nil, fmt.Errorf("reading DOFs of cell %d: %w", k, err)
		}
		if len(dofs) != len(nodes) {
			return nil, fmt.Errorf("cell %d has %d nodes but %d DOF rows", k, len(nodes), len(dofs))
		}
		for i, node := range nodes {
			if len(dofs[i]) != dim {
				return nil, fmt.Errorf("cell %d node %d has %d DOF components, want %d",
					k, i, len(dofs[i]), dim)
			}
			key := dofs[i][dim-1]
			if _, seen := t.ByDOF[key]; seen {
				continue
			}
			t.ByDOF[key] = PointEntry{Counter: counter, P: node.Clone()}
			counter++
		}
	}
	return t, nil
}

// WritePoints dumps the table as plain text, one node per line in counter
// order: counter, vertical DOF index, coordinates.
func WritePoints(w io.Writer, t *PointTable) error {
	type row struct {
		dof   int
		entry PointEntry
	}
	rows := make([]row, 0, len(t.ByDOF))
	for dof, e := range t.ByDOF {
		rows = append(rows, row{dof, e})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].entry.Counter < rows[j].entry.Counter })

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%d %d", r.entry.Counter, r.dof); err != nil {
			return err
		}
		for _, x := range r.entry.P {
			if _, err := fmt.Fprintf(w, " %.10g", x); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
