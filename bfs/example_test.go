package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvclique/bfs"
	"github.com/katalvlaran/lvclique/core"
)

func ExampleComponents() {
	g := core.FromEdges([]core.Edge{{U: 4, V: 5}, {U: 1, V: 2}, {U: 2, V: 3}})
	comps, _ := bfs.Components(context.Background(), g)
	for _, c := range comps {
		fmt.Println(c)
	}
	// Output:
	// [1 2 3]
	// [4 5]
}
