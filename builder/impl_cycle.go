// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go: Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; edges i–(i+1)%n for i=0..n-1.
//   • Path:  n ≥ 2; edges i–(i+1) for i=0..n-2.
//   • Vertices added in ascending index order.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.addVertex(cfg.idFn(i))
		}
		// i == n-1 closes the ring back to index 0.
		for i := 0; i < n; i++ {
			d.addEdge(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.addVertex(cfg.idFn(i))
		}
		for i := 0; i+1 < n; i++ {
			d.addEdge(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}
