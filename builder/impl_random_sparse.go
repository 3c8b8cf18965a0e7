// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(n) for the ID slice.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).

package builder

import (
	"github.com/katalvlaran/lvclique/core"
)

// RandomSparse returns a Constructor that samples G(n, p). Vertices that draw
// no edge are not materialized (see package doc).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		// 1) Validate parameters early.
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		// 2) Reserve IDs even for vertices that stay isolated, so the ID
		//    layout does not depend on the draw.
		ids, err := cfg.alloc(MethodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Sample unordered pairs in a stable order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if keep(cfg, p) {
					g.AddEdge(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}

// keep performs one Bernoulli trial. p ∈ {0,1} never consults the RNG.
func keep(cfg *builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	return cfg.rng.Float64() < p
}
