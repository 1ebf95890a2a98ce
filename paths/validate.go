package paths

import (
	"fmt"

	"github.com/katalvlaran/betweenness/core"
)

// Validate checks that p is a simple path in g: every vertex exists,
// consecutive vertices are adjacent, and no vertex repeats.
func Validate(g *core.Graph, p Path) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(p) == 0 {
		return ErrEmptyPath
	}
	seen := make(map[int]bool, len(p))
	for i, v := range p {
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: %d at position %d", ErrVertexNotFound, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: %d at position %d", ErrRepeatedVertex, v, i)
		}
		seen[v] = true
		if i > 0 && !g.HasEdge(p[i-1], v) {
			return fmt.Errorf("%w: %d and %d", ErrNotAdjacent, p[i-1], v)
		}
	}

	return nil
}
