// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_complete.go — Complete(n) and DisjointCliques(sizes...).
//
// Contract:
//   • n ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, in lexicographic order.
//
// Complexity:
//   • Time: O(n²) edges. Space: O(n) for the ID slice.

package builder

import (
	"github.com/katalvlaran/lvclique/core"
)

// Complete returns a Constructor that builds K_n: one maximal clique of size n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := cfg.alloc(MethodComplete, n)
		if err != nil {
			return err
		}
		completeOn(g, ids)

		return nil
	}
}

// DisjointCliques returns a Constructor that builds K_{s1} ∪ K_{s2} ∪ …
// with no edges between the parts. Every size must be ≥ MinCompleteNodes.
// The maximal cliques of the result are exactly the parts.
func DisjointCliques(sizes ...int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if len(sizes) == 0 {
			return builderErrorf(MethodDisjointCliques, ErrTooFewVertices, "no parts")
		}
		// validate everything first: zero side-effects on invalid input
		for _, n := range sizes {
			if err := validateMin(MethodDisjointCliques, n, MinCompleteNodes); err != nil {
				return err
			}
		}
		for _, n := range sizes {
			ids, err := cfg.alloc(MethodDisjointCliques, n)
			if err != nil {
				return err
			}
			completeOn(g, ids)
		}

		return nil
	}
}

// completeOn connects every pair of ids.
func completeOn(g *core.Graph, ids []core.VertexID) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			g.AddEdge(ids[i], ids[j])
		}
	}
}
