package bfs

import (
	"context"

	"github.com/katalvlaran/lvclique/core"
)

// Components partitions the vertices of g into connected components.
// Each component is ascending and components are ordered by their smallest
// member. Self-loops never join anything. A nil graph yields nil.
//
// Complexity: O(V log V + E log Δ) for the sorted traversals.
func Components(ctx context.Context, g *core.Graph) ([][]core.VertexID, error) {
	if g == nil {
		return nil, nil
	}
	snap := g.Snapshot()
	seen := make(core.VertexSet, snap.VertexCount())

	var out [][]core.VertexID
	for _, v := range snap.Vertices() {
		if seen.Has(v) {
			continue
		}
		res, err := walk(ctx, snap, v)
		if err != nil {
			return nil, err
		}
		comp := core.NewVertexSet(res.Order...)
		for id := range comp {
			seen.Add(id)
		}
		out = append(out, comp.Sorted())
	}

	return out, nil
}

// Largest returns the size of the biggest component, 0 when there is none.
func Largest(components [][]core.VertexID) int {
	best := 0
	for _, c := range components {
		if len(c) > best {
			best = len(c)
		}
	}

	return best
}
