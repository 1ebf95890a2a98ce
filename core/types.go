// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/Edge/Graph declarations and the error taxonomy of package core.
// Policy:
//   - Graph is immutable after NewGraph returns; no method mutates it.
//   - Validation errors are sentinels; data-carrying errors unwrap to them.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrDuplicateVertex indicates the vertex list contains repeats.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownEndpoint indicates an edge references a vertex outside the vertex set.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not in vertex set")

	// ErrDuplicateEdge indicates the same unordered pair appears more than once.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is an unordered pair of distinct vertices.
// Stored edges are always canonical: U < V.
type Edge struct {
	U int
	V int
}

// Canonical returns e with the smaller endpoint first.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Other returns the endpoint opposite to v, and false if v is not an endpoint.
func (e Edge) Other(v int) (int, bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	}

	return 0, false
}

// String renders the edge in tuple form, e.g. "(1,2)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// Graph is an undirected, unweighted, simple graph over integer vertices.
//
// The vertex order and edge order of the input are preserved; adjacency
// lists record neighbors in edge insertion order, both directions.
type Graph struct {
	vertices []int             // input order
	index    map[int]int       // vertex -> position in vertices
	edges    []Edge            // canonical, input order
	edgeSet  map[Edge]struct{} // canonical edge membership
	adj      map[int][]int     // vertex -> neighbors
}

// DuplicateVertexError names every vertex that occurs more than once,
// in order of first appearance.
type DuplicateVertexError struct {
	Duplicates []int
}

func (e *DuplicateVertexError) Error() string {
	parts := make([]string, len(e.Duplicates))
	for i, v := range e.Duplicates {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("%v: [%s]", ErrDuplicateVertex, strings.Join(parts, " "))
}

// Unwrap exposes ErrDuplicateVertex to errors.Is.
func (e *DuplicateVertexError) Unwrap() error { return ErrDuplicateVertex }

// UnknownEndpointError reports the first edge with an endpoint outside the vertex set.
type UnknownEndpointError struct {
	Edge   Edge
	Vertex int
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("%v: vertex %d of edge %s", ErrUnknownEndpoint, e.Vertex, e.Edge)
}

// Unwrap exposes ErrUnknownEndpoint to errors.Is.
func (e *UnknownEndpointError) Unwrap() error { return ErrUnknownEndpoint }

// DuplicateEdgeError names every canonical edge that occurs more than once,
// in order of first appearance.
type DuplicateEdgeError struct {
	Duplicates []Edge
}

func (e *DuplicateEdgeError) Error() string {
	parts := make([]string, len(e.Duplicates))
	for i, d := range e.Duplicates {
		parts[i] = d.String()
	}

	return fmt.Sprintf("%v: [%s]", ErrDuplicateEdge, strings.Join(parts, " "))
}

// Unwrap exposes ErrDuplicateEdge to errors.Is.
func (e *DuplicateEdgeError) Unwrap() error { return ErrDuplicateEdge }
