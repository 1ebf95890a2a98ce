package builder_test

import (
	"fmt"

	"github.com/katalvlaran/betweenness/builder"
)

// ExampleBuildGraph builds the wheel W_7: a hexagon 1..6 plus hub 7.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Wheel(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nbrs, _ := g.Neighbors(7)
	fmt.Println(g.Order(), g.Size())
	fmt.Println("hub neighbors:", nbrs)

	// Output:
	// 7 12
	// hub neighbors: [1 2 3 4 5 6]
}
