package clique

import (
	"github.com/katalvlaran/lvclique/core"
)

// DegeneracyOrder returns the vertices of snap in smallest-last removal
// order together with the graph's degeneracy d. Every clique has at most
// d+1 vertices.
//
// The procedure repeatedly removes a vertex of minimum remaining degree;
// ties go to the smallest ID, so the order is deterministic. Iterating the
// top level of Bron–Kerbosch in this order bounds every candidate set by d.
//
// Complexity: O(V·Δ + E) with buckets indexed by remaining degree.
func DegeneracyOrder(snap *core.Snapshot) (order []core.VertexID, degeneracy int) {
	vertices := snap.Vertices()
	order = make([]core.VertexID, 0, len(vertices))

	// remaining degree per vertex and buckets of vertices by that degree
	deg := make(map[core.VertexID]int, len(vertices))
	maxDeg := 0
	for _, v := range vertices {
		d := snap.Degree(v)
		deg[v] = d
		if d > maxDeg {
			maxDeg = d
		}
	}
	buckets := make([]core.VertexSet, maxDeg+1)
	for i := range buckets {
		buckets[i] = make(core.VertexSet)
	}
	for v, d := range deg {
		buckets[d].Add(v)
	}

	low := 0
	for range vertices {
		// lowest non-empty bucket; removals lower degrees by at most one
		if low > 0 {
			low--
		}
		for buckets[low].Len() == 0 {
			low++
		}
		if low > degeneracy {
			degeneracy = low
		}

		v := minOf(buckets[low])
		buckets[low].Remove(v)
		delete(deg, v)
		order = append(order, v)

		for w := range snap.Neighbors(v) {
			dw, alive := deg[w]
			if !alive {
				continue
			}
			buckets[dw].Remove(w)
			deg[w] = dw - 1
			buckets[dw-1].Add(w)
		}
	}

	return order, degeneracy
}

// minOf returns the smallest member of a non-empty set.
func minOf(s core.VertexSet) core.VertexID {
	first := true
	var m core.VertexID
	for v := range s {
		if first || v < m {
			m, first = v, false
		}
	}

	return m
}
