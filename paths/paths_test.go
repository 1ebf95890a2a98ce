package paths_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/core"
	"github.com/katalvlaran/betweenness/paths"
)

// PathsSuite exercises AllShortestPaths on a handful of fixed graphs.
type PathsSuite struct {
	suite.Suite
	hexagon *core.Graph
	wheel   *core.Graph
	sixNode *core.Graph
}

func (s *PathsSuite) SetupTest() {
	hexEdges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 6}, {U: 6, V: 1}}
	s.hexagon = core.MustGraph([]int{1, 2, 3, 4, 5, 6}, hexEdges)

	wheelEdges := append([]core.Edge{}, hexEdges...)
	for v := 1; v <= 6; v++ {
		wheelEdges = append(wheelEdges, core.Edge{U: v, V: 7})
	}
	s.wheel = core.MustGraph([]int{1, 2, 3, 4, 5, 6, 7}, wheelEdges)

	s.sixNode = core.MustGraph(
		[]int{1, 2, 3, 4, 5, 6},
		[]core.Edge{{U: 1, V: 2}, {U: 1, V: 5}, {U: 2, V: 3}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 6}, {U: 4, V: 5}, {U: 4, V: 6}},
	)
}

// TestTrivialPath checks that start == end yields exactly [start].
func (s *PathsSuite) TestTrivialPath() {
	for _, v := range s.hexagon.Vertices() {
		ps, err := paths.AllShortestPaths(s.hexagon, v, v)
		s.Require().NoError(err)
		s.Require().Equal([]paths.Path{{v}}, ps)
	}
}

// TestHexagonOpposite checks both arcs around the cycle are found, in adjacency order.
func (s *PathsSuite) TestHexagonOpposite() {
	ps, err := paths.AllShortestPaths(s.hexagon, 1, 4)
	s.Require().NoError(err)
	s.Require().Equal([]paths.Path{{1, 2, 3, 4}, {1, 6, 5, 4}}, ps)
}

// TestHexagonAdjacent checks a single-edge pair has one path.
func (s *PathsSuite) TestHexagonAdjacent() {
	ps, err := paths.AllShortestPaths(s.hexagon, 2, 3)
	s.Require().NoError(err)
	s.Require().Equal([]paths.Path{{2, 3}}, ps)
}

// TestWheelThroughHub checks that opposite rim vertices route through the hub.
func (s *PathsSuite) TestWheelThroughHub() {
	ps, err := paths.AllShortestPaths(s.wheel, 1, 4)
	s.Require().NoError(err)
	s.Require().Equal([]paths.Path{{1, 7, 4}}, ps)

	ps, err = paths.AllShortestPaths(s.wheel, 1, 3)
	s.Require().NoError(err)
	s.Require().ElementsMatch([]paths.Path{{1, 2, 3}, {1, 7, 3}}, ps)
}

// TestShapeProperties checks length, adjacency and simplicity on every pair.
func (s *PathsSuite) TestShapeProperties() {
	for _, g := range []*core.Graph{s.hexagon, s.wheel, s.sixNode} {
		vs := g.Vertices()
		for _, a := range vs {
			for _, b := range vs {
				d, err := bfs.MinDistance(g, a, b)
				s.Require().NoError(err)

				ps, err := paths.AllShortestPaths(g, a, b)
				s.Require().NoError(err)
				s.Require().NotEmpty(ps)

				seen := make(map[string]bool)
				for _, p := range ps {
					s.Require().Len(p, d+1)
					s.Require().Equal(a, p[0])
					s.Require().Equal(b, p[len(p)-1])
					s.Require().NoError(paths.Validate(g, p))
					s.Require().False(seen[p.String()], "duplicate path %s", p)
					seen[p.String()] = true
				}
			}
		}
	}
}

// TestSixNodeCount pins the number of 2→6 shortest paths in the six-vertex graph.
func (s *PathsSuite) TestSixNodeCount() {
	ps, err := paths.AllShortestPaths(s.sixNode, 2, 6)
	s.Require().NoError(err)
	s.Require().Equal([]paths.Path{{2, 3, 6}}, ps)

	ps, err = paths.AllShortestPaths(s.sixNode, 1, 4)
	s.Require().NoError(err)
	s.Require().Equal([]paths.Path{{1, 5, 4}}, ps)

	ps, err = paths.AllShortestPaths(s.sixNode, 2, 4)
	s.Require().NoError(err)
	s.Require().Equal([]paths.Path{{2, 3, 4}, {2, 5, 4}}, ps)
}

func TestPathsSuite(t *testing.T) {
	suite.Run(t, new(PathsSuite))
}

func TestAllShortestPaths_Errors(t *testing.T) {
	_, err := paths.AllShortestPaths(nil, 1, 2)
	assert.ErrorIs(t, err, paths.ErrGraphNil)

	g := core.MustGraph([]int{1, 2}, []core.Edge{{U: 1, V: 2}})
	_, err = paths.AllShortestPaths(g, 1, 3)
	assert.ErrorIs(t, err, paths.ErrVertexNotFound)
	_, err = paths.AllShortestPaths(g, 3, 1)
	assert.ErrorIs(t, err, paths.ErrVertexNotFound)

	_, err = paths.AllShortestPaths(g, 1, 2, paths.WithMaxPaths(-1))
	assert.ErrorIs(t, err, paths.ErrOptionViolation)
}

func TestAllShortestPaths_Unreachable(t *testing.T) {
	g := core.MustGraph([]int{1, 2, 3}, []core.Edge{{U: 1, V: 2}})

	ps, err := paths.AllShortestPaths(g, 1, 3)
	require.NoError(t, err)
	assert.NotNil(t, ps)
	assert.Empty(t, ps)
}

func TestAllShortestPaths_MaxPaths(t *testing.T) {
	// 4-cycle: two shortest paths between opposite corners.
	g := core.MustGraph([]int{1, 2, 3, 4}, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 1}})

	_, err := paths.AllShortestPaths(g, 1, 3, paths.WithMaxPaths(1))
	assert.ErrorIs(t, err, paths.ErrPathLimit)

	ps, err := paths.AllShortestPaths(g, 1, 3, paths.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func TestAllShortestPaths_ContextCancelled(t *testing.T) {
	g := core.MustGraph([]int{1, 2}, []core.Edge{{U: 1, V: 2}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := paths.AllShortestPaths(g, 1, 2, paths.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCount(t *testing.T) {
	g := core.MustGraph([]int{1, 2, 3, 4}, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 1}})

	total, through2, err := paths.Count(g, 1, 3, func(p paths.Path) bool { return p.Contains(2) })
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, through2)
}

func TestPath_Helpers(t *testing.T) {
	p := paths.Path{4, 7, 9}
	assert.Equal(t, 2, p.Len())
	assert.True(t, p.Contains(4))
	assert.False(t, p.Interior(4))
	assert.True(t, p.Interior(7))
	assert.Equal(t, "4 -> 7 -> 9", p.String())

	assert.Equal(t, 0, paths.Path{}.Len())
	assert.False(t, paths.Path{1, 2}.Interior(1))
}

func TestValidate(t *testing.T) {
	g := core.MustGraph([]int{1, 2, 3}, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}})

	assert.NoError(t, paths.Validate(g, paths.Path{1, 2, 3}))
	assert.ErrorIs(t, paths.Validate(g, paths.Path{}), paths.ErrEmptyPath)
	assert.ErrorIs(t, paths.Validate(g, paths.Path{1, 3}), paths.ErrNotAdjacent)
	assert.ErrorIs(t, paths.Validate(g, paths.Path{1, 2, 1}), paths.ErrRepeatedVertex)
	assert.ErrorIs(t, paths.Validate(g, paths.Path{1, 8}), paths.ErrVertexNotFound)
	assert.ErrorIs(t, paths.Validate(nil, paths.Path{1}), paths.ErrGraphNil)
}
