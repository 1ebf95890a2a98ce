// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go: Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star:  n ≥ 2; center is index 0, leaves 1..n-1, spokes in leaf order.
//   • Wheel: n ≥ 4; W_n = C_{n-1} on indices 0..n-2 plus hub index n-1,
//            spokes emitted in ring order after the ring edges.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // outer cycle has size n-1 ≥ 3
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := cfg.idFn(0)
		d.addVertex(center)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			d.addVertex(leaf)
			d.addEdge(center, leaf)
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := cfg.idFn(n - 1)
		d.addVertex(hub)
		for i := 0; i < n-1; i++ {
			d.addEdge(cfg.idFn(i), hub)
		}

		return nil
	}
}
