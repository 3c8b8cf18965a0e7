// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_cycle.go — Cycle(n): ring v0—v1—…—v(n-1)—v0.

package builder

import (
	"github.com/katalvlaran/lvclique/core"
)

// Cycle returns a Constructor that builds C_n (n ≥ 3). C_3 is a triangle;
// for n ≥ 4 the maximal cliques are the n ring edges.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := cfg.alloc(MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			g.AddEdge(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
