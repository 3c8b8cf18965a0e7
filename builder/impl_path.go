// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_path.go — Path(n): v0—v1—…—v(n-1).

package builder

import (
	"github.com/katalvlaran/lvclique/core"
)

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// Its maximal cliques are the n-1 edges.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids, err := cfg.alloc(MethodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			g.AddEdge(ids[i], ids[i+1])
		}

		return nil
	}
}
