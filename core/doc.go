// Package core provides the immutable graph model used by every algorithm
// package in this module: an undirected, unweighted, simple graph over
// integer vertex identifiers.
//
// The Graph G = (V,E) is built once from a vertex list and an edge list:
//
//	g, err := core.NewGraph(
//	    []int{1, 2, 3},
//	    []core.Edge{{U: 1, V: 2}, {U: 3, V: 2}},
//	)
//
// Construction validates, in order:
//
//   - No duplicate vertices          → *DuplicateVertexError (ErrDuplicateVertex)
//   - No self-loops                  → ErrSelfLoop
//   - Every endpoint is a vertex     → *UnknownEndpointError (ErrUnknownEndpoint)
//   - No duplicate canonical edges   → *DuplicateEdgeError (ErrDuplicateEdge)
//
// Edges are canonicalized to (min,max), so (2,1) and (1,2) are the same edge.
// Adjacency is a map keyed by vertex identifier; identifiers need not be
// contiguous or start at 1.
//
// Determinism:
//
//   - Vertices() preserves input order.
//   - Edges() preserves input order (canonical form).
//   - Neighbors(v) lists neighbors in edge insertion order.
//
// Concurrency:
//
//	A Graph is never mutated after NewGraph returns, so it may be shared
//	between goroutines without locking.
package core
