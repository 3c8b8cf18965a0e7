package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvclique/builder"
)

// ExampleBuildGraph composes two triangles into one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.DisjointCliques(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.HasEdge(0, 1), g.HasEdge(2, 3))
	// Output:
	// 6 6
	// true false
}
