// Package graphio reads vertex and edge lists from text and TOML and turns
// them into a validated core.Graph.
//
// Text format (the interactive prompt format):
//
//	vertices: 1,2,3,4
//	edges:    (1,2),(2,3),(3,4)
//
// Whitespace anywhere is ignored. An empty edge string means no edges.
//
// TOML format:
//
//	vertices = [1, 2, 3, 4]
//	edges = [[1, 2], [2, 3], [3, 4]]
//
// Parsing errors wrap ErrSyntax; validation errors come from core unchanged,
// so errors.Is(err, core.ErrDuplicateVertex) and friends keep working.
package graphio
