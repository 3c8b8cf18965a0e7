package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/builder"
)

// TestWithSeed_Deterministic: same seed ⇒ identical graphs.
func TestWithSeed_Deterministic(t *testing.T) {
	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))
	assert.Equal(t, g1.Edges(), g2.Edges())
}

// TestWithRand_SharedSource: one RNG drives consecutive constructors.
func TestWithRand_SharedSource(t *testing.T) {
	r1 := rand.New(rand.NewSource(7))
	g1, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(r1)},
		builder.RandomSparse(12, 0.5), builder.RandomSparse(12, 0.5))
	require.NoError(t, err)

	g2, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(12, 0.5), builder.RandomSparse(12, 0.5))
	require.NoError(t, err)
	assert.True(t, g1.Equal(g2))

	for _, v := range g1.Vertices() {
		assert.Less(t, int(v), 24)
	}
}

// TestWithRand_NilPanics documents the option contract.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}

// TestOptions_LaterOverrides: later options win.
func TestOptions_LaterOverrides(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDOffset(100), builder.WithIDOffset(10)},
		builder.Path(2),
	)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(10, 11))
}
