// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go: Complete(n) and Grid(rows, cols) constructors.
//
// Contract:
//   • Complete: n ≥ 1; edges (i,j) for i<j in lexicographic order.
//   • Grid: rows, cols ≥ 1; index r*cols+c; for each cell emit the right
//     neighbor, then the bottom neighbor.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	minCompleteNodes = 1
	minGridDim       = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addEdge(cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		at := func(r, c int) int { return cfg.idFn(r*cols + c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.addVertex(at(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.addEdge(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					d.addEdge(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
