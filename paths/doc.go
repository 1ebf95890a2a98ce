// Package paths enumerates *all* shortest paths between two vertices of a
// core.Graph, not just one as a BFS parent tree would give.
//
// Algorithm:
//
//  1. d := bfs.MinDistance(g, start, end)
//  2. Depth-first expansion from start with a budget of d hops, only ever
//     stepping to neighbors not already on the current path.
//  3. Emit the path when the budget hits 0 at end; prune when it hits 0
//     anywhere else.
//
// Because d is minimal, every emitted path has exactly d+1 vertices.
//
// Complexity:
//
//   - Time: exponential in the worst case (dense, symmetric graphs);
//     bounded by the number of simple walks of length d from start.
//   - Memory: O(d) for the recursion stack plus the returned paths.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked at every expansion step.
//   - WithMaxPaths(n)    abort with ErrPathLimit after n paths (0 = no limit).
//
// Errors:
//
//   - ErrGraphNil, ErrVertexNotFound, ErrOptionViolation, ErrPathLimit,
//     context.Canceled / context.DeadlineExceeded.
//
// An unreachable end is not an error: the result is simply empty.
package paths
