// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • next is the ID cursor shared by all constructors of one BuildGraph call.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvclique/core"
)

// builderConfig aggregates all knobs used by constructors. Constructors
// receive a pointer because allocating IDs advances the shared cursor.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// next is the identifier handed to the next allocated vertex.
	next uint64
}

// newBuilderConfig constructs a config with deterministic defaults
// (no RNG, IDs from 0) and applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// alloc reserves n consecutive vertex IDs.
func (c *builderConfig) alloc(method string, n int) ([]core.VertexID, error) {
	if c.next+uint64(n) > math.MaxUint32+1 {
		return nil, builderErrorf(method, ErrIDSpaceExhausted, "need %d IDs from %d", n, c.next)
	}
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = core.VertexID(c.next)
		c.next++
	}

	return ids, nil
}
