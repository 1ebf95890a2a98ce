// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: NewGraph constructor: validation and adjacency construction.
// Policy:
//   - Validation runs before any derived structure is built.
//   - The first failing check aborts construction; no partial Graph is returned.

package core

import "fmt"

// NewGraph validates vertices and edges and returns an immutable Graph.
//
// Implementation:
//   - Stage 1: reject duplicate vertices (DuplicateVertexError names all of them).
//   - Stage 2: canonicalize each edge to (min,max); reject self-loops and
//     endpoints outside the vertex set (UnknownEndpointError).
//   - Stage 3: reject duplicate canonical edges (DuplicateEdgeError names all of them).
//   - Stage 4: build adjacency; for edge (u,v) append v to adj[u] and u to adj[v].
//
// Both input slices are copied; the caller may reuse them afterwards.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func NewGraph(vertices []int, edges []Edge) (*Graph, error) {
	g := &Graph{
		vertices: make([]int, 0, len(vertices)),
		index:    make(map[int]int, len(vertices)),
		edges:    make([]Edge, 0, len(edges)),
		edgeSet:  make(map[Edge]struct{}, len(edges)),
		adj:      make(map[int][]int, len(vertices)),
	}

	// Stage 1: vertices.
	var dups []int
	reported := make(map[int]bool)
	for _, v := range vertices {
		if _, seen := g.index[v]; seen {
			if !reported[v] {
				reported[v] = true
				dups = append(dups, v)
			}
			continue
		}
		g.index[v] = len(g.vertices)
		g.vertices = append(g.vertices, v)
	}
	if len(dups) > 0 {
		return nil, &DuplicateVertexError{Duplicates: dups}
	}

	// Stage 2: endpoints.
	canon := make([]Edge, len(edges))
	for i, e := range edges {
		if e.U == e.V {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, e)
		}
		for _, end := range [2]int{e.U, e.V} {
			if _, ok := g.index[end]; !ok {
				return nil, &UnknownEndpointError{Edge: e, Vertex: end}
			}
		}
		canon[i] = e.Canonical()
	}

	// Stage 3: duplicate edges.
	var dupEdges []Edge
	reportedEdge := make(map[Edge]bool)
	for _, e := range canon {
		if _, seen := g.edgeSet[e]; seen {
			if !reportedEdge[e] {
				reportedEdge[e] = true
				dupEdges = append(dupEdges, e)
			}
			continue
		}
		g.edgeSet[e] = struct{}{}
		g.edges = append(g.edges, e)
	}
	if len(dupEdges) > 0 {
		return nil, &DuplicateEdgeError{Duplicates: dupEdges}
	}

	// Stage 4: adjacency. Every vertex gets a (possibly empty) list.
	for _, v := range g.vertices {
		g.adj[v] = []int{}
	}
	for _, e := range g.edges {
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}

	return g, nil
}

// MustGraph is like NewGraph but panics on error.
// Intended for fixtures and examples with literal input.
func MustGraph(vertices []int, edges []Edge) *Graph {
	g, err := NewGraph(vertices, edges)
	if err != nil {
		panic(err)
	}

	return g
}
