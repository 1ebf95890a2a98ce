// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go: RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • RNG required only when 0 < p < 1.
//   • Trial order: for each i asc, j>i asc; one Bernoulli trial per pair.
//
// Determinism:
//   • Fixed seed ⇒ identical graph.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			d.addVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
				case p == probMax:
					d.addEdge(cfg.idFn(i), cfg.idFn(j))
				case cfg.rng.Float64() < p:
					d.addEdge(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
