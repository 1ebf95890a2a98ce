package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/betweenness/core"
)

// ExampleNewGraph demonstrates construction and read-only queries.
func ExampleNewGraph() {
	g, err := core.NewGraph(
		[]int{1, 2, 3, 4},
		[]core.Edge{{U: 2, V: 1}, {U: 2, V: 3}, {U: 3, V: 4}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	nbrs, _ := g.Neighbors(2)
	fmt.Println("Edges:", g.Edges())
	fmt.Println("Neighbors of 2:", nbrs)
	fmt.Println("3-2 adjacent?", g.HasEdge(3, 2))

	// Output:
	// Edges: [(1,2) (2,3) (3,4)]
	// Neighbors of 2: [1 3]
	// 3-2 adjacent? true
}

// ExampleDuplicateVertexError shows how to recover the offending vertices.
func ExampleDuplicateVertexError() {
	_, err := core.NewGraph([]int{1, 2, 2, 3, 3}, nil)

	var dv *core.DuplicateVertexError
	if errors.As(err, &dv) {
		fmt.Println(dv.Duplicates)
	}
	fmt.Println(errors.Is(err, core.ErrDuplicateVertex))

	// Output:
	// [2 3]
	// true
}
