package paths

import (
	"fmt"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/core"
)

// enumerator encapsulates state during depth-bounded enumeration.
type enumerator struct {
	graph  *core.Graph
	opts   Options
	end    int
	onPath map[int]bool // vertices on the current partial path
	cur    Path         // current partial path, start first
	out    []Path
}

// AllShortestPaths returns every shortest path between start and end.
//
// The hop count d comes from bfs.MinDistance. The enumeration then extends a
// partial path one unvisited neighbor at a time, decrementing the remaining
// budget per hop. A path is emitted exactly when the budget reaches 0 at end;
// any branch whose budget reaches 0 elsewhere is pruned. Since d is minimal,
// every emitted path is shortest and has d+1 vertices.
//
// Order follows adjacency order and depth-first expansion.
// start == end yields the single trivial path [start].
// If end is unreachable the result is empty with a nil error.
func AllShortestPaths(g *core.Graph, start, end int, opts ...Option) ([]Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, v := range [2]int{start, end} {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
		}
	}

	d, err := bfs.MinDistance(g, start, end, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	if d == bfs.Unreachable {
		return []Path{}, nil
	}

	e := &enumerator{
		graph:  g,
		opts:   o,
		end:    end,
		onPath: map[int]bool{start: true},
		cur:    make(Path, 1, d+1),
		out:    []Path{},
	}
	e.cur[0] = start
	if err = e.expand(start, d); err != nil {
		return nil, err
	}

	return e.out, nil
}

// expand grows the current path from node with budget hops remaining.
func (e *enumerator) expand(node, budget int) error {
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	if budget == 0 {
		if node == e.end {
			return e.emit()
		}
		return nil
	}

	var err error
	e.graph.ForEachNeighbor(node, func(nbr int) bool {
		if e.onPath[nbr] {
			return true
		}
		e.onPath[nbr] = true
		e.cur = append(e.cur, nbr)
		err = e.expand(nbr, budget-1)
		e.cur = e.cur[:len(e.cur)-1]
		e.onPath[nbr] = false

		return err == nil
	})

	return err
}

// emit records a copy of the current path.
func (e *enumerator) emit() error {
	if e.opts.MaxPaths > 0 && len(e.out) >= e.opts.MaxPaths {
		return fmt.Errorf("%w: more than %d paths from %d to %d",
			ErrPathLimit, e.opts.MaxPaths, e.cur[0], e.end)
	}
	p := make(Path, len(e.cur))
	copy(p, e.cur)
	e.out = append(e.out, p)

	return nil
}

// Count enumerates the shortest paths between start and end and returns how
// many there are and how many of them satisfy through.
func Count(g *core.Graph, start, end int, through func(Path) bool, opts ...Option) (total, matched int, err error) {
	ps, err := AllShortestPaths(g, start, end, opts...)
	if err != nil {
		return 0, 0, err
	}
	for _, p := range ps {
		if through(p) {
			matched++
		}
	}

	return len(ps), matched, nil
}
