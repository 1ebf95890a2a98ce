// Package betweenness computes exact shortest-path betweenness centrality on
// small undirected, unweighted graphs.
//
// The work is split across subpackages:
//
//	core/        validated Graph built from a vertex list and an edge list
//	bfs/         breadth-first distances, parent links and components
//	paths/       enumeration of every shortest path between two vertices
//	centrality/  per-vertex scores, the maximum and the tied top vertices
//	builder/     deterministic generators (cycle, wheel, grid, ...)
//	graphio/     text and TOML readers and writers
//
// Centrality is exhaustive: for every unordered pair of other vertices all
// shortest paths are enumerated and the fraction passing through the vertex
// is summed, then divided by (N-1)(N-2)/2. The count of shortest paths can
// grow exponentially, so the approach is intended for graphs of modest size.
// paths.WithMaxPaths and centrality.WithMaxPaths bound the enumeration.
//
// Quick start:
//
//	g, err := core.NewGraph(
//		[]int{1, 2, 3, 4, 5},
//		[]core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	top, err := centrality.TopBetweenness(g) // [3]
//
// The sbc command in cmd/sbc exposes the same operations on the command line.
package betweenness
