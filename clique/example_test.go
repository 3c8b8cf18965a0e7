package clique_test

import (
	"fmt"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

// ExampleBronKerbosch lists the maximal cliques of two triangles joined by
// a bridge, skipping anything smaller than a triangle.
func ExampleBronKerbosch() {
	g := core.FromEdges([]core.Edge{
		{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3},
		{U: 3, V: 4},
		{U: 4, V: 5}, {U: 5, V: 6}, {U: 4, V: 6},
	})

	res, err := clique.BronKerbosch(g, clique.WithMinSize(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Cliques {
		fmt.Println(c)
	}
	fmt.Println("dropped:", res.Stats.BelowThreshold)
	// Output:
	// [1 2 3]
	// [4 5 6]
	// dropped: 1
}

// ExampleSearch resumes enumeration from a frame where vertex 3 is already
// committed.
func ExampleSearch() {
	g := core.FromEdges([]core.Edge{{U: 1, V: 3}, {U: 2, V: 3}, {U: 1, V: 2}, {U: 3, V: 4}})
	snap := g.Snapshot()

	var out []clique.Clique
	err := clique.Search(core.NewVertexSet(3), core.NewVertexSet(1, 2, 4), nil, snap, 0, &out)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	clique.SortCliques(out)
	fmt.Println(out)
	// Output:
	// [[1 2 3] [3 4]]
}
