package bfs_test

import (
	"testing"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	vertices := make([]int, 0, N+1)
	edges := make([]core.Edge, 0, N)
	for i := 0; i <= N; i++ {
		vertices = append(vertices, i)
		if i > 0 {
			edges = append(edges, core.Edge{U: i - 1, V: i})
		}
	}
	g := core.MustGraph(vertices, edges)

	b.ReportAllocs()
	b.SetBytes(int64(len(vertices) + len(edges)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1

	vertices := make([]int, 0, nodeCount)
	for i := 1; i <= nodeCount; i++ {
		vertices = append(vertices, i)
	}
	var edges []core.Edge
	// connect parent → children
	for i := 1; i <= (nodeCount-1)/2; i++ {
		edges = append(edges, core.Edge{U: i, V: 2 * i}, core.Edge{U: i, V: 2*i + 1})
	}
	g := core.MustGraph(vertices, edges)

	b.ReportAllocs()
	b.SetBytes(int64(nodeCount + len(edges)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.MinDistance(g, 1, nodeCount)
	}
}
