// Package fixtures builds small procedural graphs for use from _test.go
// files (dglio's large grid round trip uses Grid). Trimmed from the teacher's
// builder package's constructor set (Grid, Path, Cycle, Complete, Star)
// down to what this repo's test scenarios actually exercise, and
// reworked for core.Context's int32 node ids in place of the teacher's
// string vertex ids.
package fixtures

import (
	"fmt"

	"github.com/katalvlaran/dglath/core"
)

// cellID maps a (row, col) grid coordinate to a row-major node id,
// mirroring the teacher's "r,c" scheme's row-major ordering without its
// string encoding.
func cellID(row, col, cols int) int32 {
	return int32(row*cols + col)
}

// Grid builds a rows x cols orthogonal grid in g: one node per cell and
// one edge to each cell's right and bottom neighbor where they exist.
// Edges carry the given cost and are undirected (omit FlagDirected) so
// a V3 graph walks them both ways from a single stored record; V1/V2
// callers wanting two-way traversal should add the reverse arcs
// themselves, as V1/V2 have no undirected-traversal convention.
//
// rows and cols must each be >= 1.
func Grid(g *core.Context, rows, cols int, cost int32) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("fixtures: Grid(rows=%d, cols=%d): both must be >= 1", rows, cols)
	}

	nextID := int32(rows * cols) // edge ids start past the highest node id
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := cellID(r, c, cols)
			if c+1 < cols {
				v := cellID(r, c+1, cols)
				if err := g.AddEdge(u, v, cost, nextID, nil, 0); err != nil {
					return fmt.Errorf("fixtures: Grid: right edge (%d,%d)->(%d,%d): %w", r, c, r, c+1, err)
				}
				nextID++
			}
			if r+1 < rows {
				v := cellID(r+1, c, cols)
				if err := g.AddEdge(u, v, cost, nextID, nil, 0); err != nil {
					return fmt.Errorf("fixtures: Grid: bottom edge (%d,%d)->(%d,%d): %w", r, c, r+1, c, err)
				}
				nextID++
			}
		}
	}
	return nil
}

// Path builds a straight chain of n nodes (ids 0..n-1), each directed
// edge i->i+1 costing cost.
func Path(g *core.Context, n int, cost int32) error {
	if n < 1 {
		return fmt.Errorf("fixtures: Path(n=%d): must be >= 1", n)
	}
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(int32(i), int32(i+1), cost, int32(n+i), nil, core.FlagDirected); err != nil {
			return fmt.Errorf("fixtures: Path: edge %d->%d: %w", i, i+1, err)
		}
	}
	return nil
}

// Cycle builds Path(n) plus one closing directed edge n-1->0.
func Cycle(g *core.Context, n int, cost int32) error {
	if n < 2 {
		return fmt.Errorf("fixtures: Cycle(n=%d): must be >= 2", n)
	}
	if err := Path(g, n, cost); err != nil {
		return err
	}
	return g.AddEdge(int32(n-1), 0, cost, int32(2*n-1), nil, core.FlagDirected)
}

// Complete builds a complete directed graph on n nodes (ids 0..n-1):
// every ordered pair (i, j), i != j, gets its own directed edge.
func Complete(g *core.Context, n int, cost int32) error {
	if n < 1 {
		return fmt.Errorf("fixtures: Complete(n=%d): must be >= 1", n)
	}
	id := int32(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := g.AddEdge(int32(i), int32(j), cost, id, nil, core.FlagDirected); err != nil {
				return fmt.Errorf("fixtures: Complete: edge %d->%d: %w", i, j, err)
			}
			id++
		}
	}
	return nil
}

// Star builds a hub-and-spoke graph: node 0 is the hub, nodes 1..n are
// spokes, each joined to the hub by an undirected edge.
func Star(g *core.Context, n int, cost int32) error {
	if n < 1 {
		return fmt.Errorf("fixtures: Star(n=%d): must be >= 1", n)
	}
	for i := 1; i <= n; i++ {
		if err := g.AddEdge(0, int32(i), cost, int32(n+i), nil, 0); err != nil {
			return fmt.Errorf("fixtures: Star: spoke %d: %w", i, err)
		}
	}
	return nil
}
