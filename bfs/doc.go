// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFS returns a BFSResult with Order, Depth (a DistanceTable) and Parent.
//   - MinDistance answers a single start→end query; Unreachable (-1) marks
//     vertices outside the start's component.
//   - Components partitions the graph into connected components.
//
// Why
//
//   - MinDistance is the depth budget for exhaustive shortest-path
//     enumeration in package paths.
//   - Components lets centrality reject disconnected graphs before doing
//     any enumeration.
//
// Determinism
//
//	core.Graph lists neighbors in edge insertion order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	d, err := bfs.MinDistance(g, 1, 4)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound, ...
//	}
//	if d == bfs.Unreachable {
//	    // 4 is in another component
//	}
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):   hook during visit; returning an error aborts BFS.
package bfs
