// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_star.go — Star(n): the first allocated vertex is the hub.

package builder

import (
	"github.com/katalvlaran/lvclique/core"
)

// Star returns a Constructor that builds a hub joined to n-1 leaves (n ≥ 2).
// The hub receives the lowest allocated ID.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		ids, err := cfg.alloc(MethodStar, n)
		if err != nil {
			return err
		}
		hub := ids[0]
		for _, leaf := range ids[1:] {
			g.AddEdge(hub, leaf)
		}

		return nil
	}
}
