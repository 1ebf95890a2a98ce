// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/betweenness/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// The traversal always drains the frontier; it does not stop early
// once a particular vertex has been reached.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(DistanceTable, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start vertex: distance to self is 0.
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors assigns depth+1 to every neighbor still unreached,
// honoring MaxDepth, and appends it to the frontier.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.graph.ForEachNeighbor(item.v, func(nbr int) bool {
		if _, seen := w.res.Depth[nbr]; !seen {
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = item.v
			w.queue = append(w.queue, queueItem{v: nbr, depth: next})
		}
		return true
	})
}

// Distances returns the hop count from start to every vertex it reaches.
// Use DistanceTable.Get to read Unreachable for the rest.
func Distances(g *core.Graph, start int, opts ...Option) (DistanceTable, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// MinDistance returns the number of edges on a shortest start–end path,
// 0 when start == end, or Unreachable when no path exists.
func MinDistance(g *core.Graph, start, end int, opts ...Option) (int, error) {
	if g == nil {
		return Unreachable, ErrGraphNil
	}
	if !g.HasVertex(end) {
		return Unreachable, fmt.Errorf("%w: %d", ErrEndVertexNotFound, end)
	}
	dist, err := Distances(g, start, opts...)
	if err != nil {
		return Unreachable, err
	}

	return dist.Get(end), nil
}

// Components partitions the vertices of g into connected components.
// Components are ordered by their first vertex in input order, and vertices
// within a component keep input order.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	comp := make(map[int]int, len(vertices))
	var out [][]int
	for _, v := range vertices {
		if _, done := comp[v]; done {
			continue
		}
		id := len(out)
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for u := range res.Depth {
			comp[u] = id
		}
		out = append(out, nil)
	}
	for _, v := range vertices {
		out[comp[v]] = append(out[comp[v]], v)
	}

	return out, nil
}
