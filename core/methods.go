// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries over an immutable Graph.
// Policy:
//   - Slices handed to callers are copies; internal state never escapes.

package core

import "fmt"

// Vertices returns the vertex list in input order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns the canonical edge list in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether v belongs to the graph.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.index[v]

	return ok
}

// HasEdge reports whether u and v are adjacent; argument order does not matter.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edgeSet[Edge{U: u, V: v}.Canonical()]

	return ok
}

// Neighbors returns the neighbors of v in edge insertion order.
// Returns ErrVertexNotFound if v is not in the graph.
func (g *Graph) Neighbors(v int) ([]int, error) {
	nbrs, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	out := make([]int, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// ForEachNeighbor calls fn for each neighbor of v in insertion order
// without copying; iteration stops when fn returns false.
// Unknown vertices have no neighbors.
func (g *Graph) ForEachNeighbor(v int, fn func(nbr int) bool) {
	for _, n := range g.adj[v] {
		if !fn(n) {
			return
		}
	}
}

// Degree returns the number of neighbors of v, or 0 for unknown vertices.
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// IndexOf returns the position of v in the vertex input order, or -1.
func (g *Graph) IndexOf(v int) int {
	if i, ok := g.index[v]; ok {
		return i
	}

	return -1
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }
