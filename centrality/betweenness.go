package centrality

import (
	"fmt"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/core"
	"github.com/katalvlaran/betweenness/paths"
)

// pairPaths holds every shortest path of one unordered vertex pair.
type pairPaths struct {
	u, v  int
	paths []paths.Path
}

// Betweenness returns the normalized betweenness centrality of node:
//
//	C(node) = Σ_{i<j, i,j ≠ node} σ_ij(node) / σ_ij  ÷  ((N-1)(N-2)/2)
//
// where σ_ij is the number of shortest i–j paths and σ_ij(node) the number
// of those containing node. Pairs are visited in vertex input order.
//
// Errors:
//   - ErrGraphNil, ErrVertexNotFound, ErrOptionViolation.
//   - ErrDegenerateGraph when N < 3.
//   - *DisconnectedError (ErrDisconnected) when a visited pair has no path.
//   - paths.ErrPathLimit when WithMaxPaths is exceeded; context errors.
func Betweenness(g *core.Graph, node int, opts ...Option) (float64, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return 0, err
	}
	if !g.HasVertex(node) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, node)
	}

	vs := g.Vertices()
	sum := 0.0
	for i := 0; i < len(vs); i++ {
		if vs[i] == node {
			continue
		}
		for j := i + 1; j < len(vs); j++ {
			if vs[j] == node {
				continue
			}
			pp, err := enumerate(g, vs[i], vs[j], o)
			if err != nil {
				return 0, err
			}
			sum += ratio(node, pp, o)
		}
	}

	return sum / normalizer(len(vs)), nil
}

// Scores computes the betweenness centrality of every vertex.
//
// Connectivity is checked up front with bfs.Components so a disconnected
// graph fails before any enumeration. Each pair's shortest paths are
// enumerated once and shared by every vertex; the per-vertex sums are
// accumulated in the same pair order as Betweenness, so the values match
// it exactly.
func Scores(g *core.Graph, opts ...Option) (*Result, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}

	comps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		return nil, &DisconnectedError{U: comps[0][0], V: comps[1][0]}
	}

	vs := g.Vertices()
	table := make([]pairPaths, 0, len(vs)*(len(vs)-1)/2)
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			pp, err := enumerate(g, vs[i], vs[j], o)
			if err != nil {
				return nil, err
			}
			table = append(table, pp)
		}
	}

	norm := normalizer(len(vs))
	res := &Result{Scores: make([]Score, 0, len(vs))}
	for k, node := range vs {
		sum := 0.0
		for _, pp := range table {
			if pp.u == node || pp.v == node {
				continue
			}
			sum += ratio(node, pp, o)
		}
		value := sum / norm
		res.Scores = append(res.Scores, Score{Vertex: node, Value: value})
		if k == 0 || value > res.Max {
			res.Max = value
		}
	}

	return res, nil
}

// TopBetweenness returns every vertex tied for the highest betweenness
// centrality, in vertex input order. Ties are scores within Epsilon of the
// maximum (see WithEpsilon).
func TopBetweenness(g *core.Graph, opts ...Option) ([]int, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}
	res, err := Scores(g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Top(o.Epsilon), nil
}

// resolve applies opts and performs the checks shared by every entry point.
func resolve(g *core.Graph, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGraphNil
	}
	if n := g.Order(); n < minVertices {
		return o, fmt.Errorf("%w: got %d", ErrDegenerateGraph, n)
	}

	return o, nil
}

// enumerate collects the shortest paths of {u,v}; zero paths is a
// DisconnectedError.
func enumerate(g *core.Graph, u, v int, o Options) (pairPaths, error) {
	ps, err := paths.AllShortestPaths(g, u, v,
		paths.WithContext(o.Ctx),
		paths.WithMaxPaths(o.MaxPaths),
	)
	if err != nil {
		return pairPaths{}, fmt.Errorf("centrality: pair (%d,%d): %w", u, v, err)
	}
	if len(ps) == 0 {
		return pairPaths{}, &DisconnectedError{U: u, V: v}
	}

	return pairPaths{u: u, v: v, paths: ps}, nil
}

// ratio returns the fraction of pp's paths that pass through node.
func ratio(node int, pp pairPaths, o Options) float64 {
	through := 0
	for _, p := range pp.paths {
		if passes(p, node, o.Membership) {
			through++
		}
	}
	if o.OnPair != nil {
		o.OnPair(node, pp.u, pp.v, through, len(pp.paths))
	}

	return float64(through) / float64(len(pp.paths))
}

// passes reports whether p counts as passing through node.
func passes(p paths.Path, node int, m Membership) bool {
	if m == Interior {
		return p.Interior(node)
	}

	return p.Contains(node)
}

// normalizer is the number of vertex pairs excluding one vertex.
func normalizer(n int) float64 {
	return float64((n-1)*(n-2)) / 2
}
