package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/core"
)

// ExampleMinDistance finds the fewest-hop distance between two vertices.
// Two competing routes exist from 1 to 7: one of length 4, another of length 3.
func ExampleMinDistance() {
	g := core.MustGraph(
		[]int{1, 2, 3, 4, 5, 6, 7},
		[]core.Edge{
			// Route1: 1–2–3–4–7 (4 hops)
			{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 7},
			// Route2: 1–5–6–7 (3 hops)
			{U: 1, V: 5}, {U: 5, V: 6}, {U: 6, V: 7},
		},
	)

	d, err := bfs.MinDistance(g, 1, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("distance:", d)

	res, _ := bfs.BFS(g, 1)
	path, _ := res.PathTo(7)
	fmt.Println("path:", path)

	// Output:
	// distance: 3
	// path: [1 5 6 7]
}

// ExampleComponents shows how isolated vertices form their own component.
func ExampleComponents() {
	g := core.MustGraph([]int{1, 2, 3, 4}, []core.Edge{{U: 1, V: 2}, {U: 2, V: 3}})

	comps, _ := bfs.Components(g)
	fmt.Println(comps)

	// Output:
	// [[1 2 3] [4]]
}
