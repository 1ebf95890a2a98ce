// Package builder provides deterministic topology generators for core.Graph:
// cycles, paths, stars, wheels, complete graphs, grids, and seeded random
// sparse graphs. They feed tests, examples, and the sbc CLI --generate flag.
//
// Because core.Graph is immutable, constructors append to a draft vertex
// and edge list; BuildGraph hands the finished draft to core.NewGraph, so
// every generated graph passes the same validation as user input.
//
//	g, err := builder.BuildGraph(nil, builder.Wheel(7))
//	// hexagon 1..6 plus hub 7 connected to every rim vertex
//
// Vertex identifiers:
//
//	Index i maps to base+i; base defaults to 1 (WithBase changes it).
//	Fixed roles use fixed indices: Star's center is index 0, Wheel's hub
//	is index n-1.
//
// Guarantees:
//
//   - Determinism: same constructors, order, options and seed ⇒ same graph.
//   - Idempotent drafts: re-adding an existing vertex or edge is a no-op, so
//     constructors may be composed over shared vertices.
//   - Never panics; parameter errors are sentinels wrapped with context.
package builder
