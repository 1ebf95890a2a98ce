// Package centrality computes betweenness centrality on a core.Graph by
// exhaustive enumeration of all shortest paths between every vertex pair,
// and finds the set of vertices with maximal centrality.
//
// For a vertex v of a graph with N vertices:
//
//	C(v) = Σ_{ {i,j} ⊆ V∖{v} } σ_ij(v) / σ_ij   ÷   ((N-1)(N-2)/2)
//
// σ_ij is the number of shortest i–j paths (from package paths) and σ_ij(v)
// the number of those on which v appears. On a connected graph with N ≥ 3
// the result lies in [0, 1].
//
// Entry points:
//
//   - Betweenness(g, v)  score of one vertex
//   - Scores(g)          score of every vertex, in input order, plus the max
//   - TopBetweenness(g)  every vertex tied for the max, in input order
//
// Membership:
//
//	Inclusive (default) counts a path if v appears anywhere on it. Interior
//	counts it only when v is strictly between the endpoints. Since pairs
//	never include v itself, both give the same numbers; WithMembership keeps
//	the choice explicit.
//
// Errors:
//
//   - ErrGraphNil, ErrVertexNotFound, ErrOptionViolation
//   - ErrDegenerateGraph  N < 3: the normalizer is zero
//   - ErrDisconnected     some pair has no path (as *DisconnectedError)
//   - paths.ErrPathLimit  per-pair cap set via WithMaxPaths was exceeded
//
// Complexity:
//
//	Roughly O(V · V² · P) for Betweenness over all vertices, where P is the
//	cost of one all-shortest-paths enumeration. Scores enumerates each pair
//	once, O(V² · P + V³ · k) with k paths per pair. Meant for small graphs.
package centrality
