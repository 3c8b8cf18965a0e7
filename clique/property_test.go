package clique_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/core"
)

// requireSameCliques compares two result sets by canonical keys, so a nil
// result and an empty one are equal.
func requireSameCliques(t testing.TB, want, got []clique.Clique, msgAndArgs ...interface{}) {
	t.Helper()
	keys := func(cs []clique.Clique) []string {
		out := make([]string, 0, len(cs))
		for _, c := range cs {
			out = append(out, "["+c.Key()+"]")
		}
		return out
	}
	require.Equal(t, keys(want), keys(got), msgAndArgs...)
}

// randomGraph draws G(n, p) from a fixed seed; a handful of self-loops is
// sprinkled in so the loop handling is exercised as well.
func randomGraph(t testing.TB, seed int64, n int, p float64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)
	if seed%3 == 0 {
		for _, v := range g.Vertices() {
			if v%5 == 0 {
				g.AddEdge(v, v)
			}
		}
	}

	return g
}

func TestBronKerbosch_MatchesOracles(t *testing.T) {
	densities := []float64{0.1, 0.3, 0.5, 0.8}
	for seed := int64(1); seed <= 40; seed++ {
		p := densities[int(seed)%len(densities)]
		n := 4 + int(seed%13)
		g := randomGraph(t, seed, n, p)
		name := fmt.Sprintf("seed=%d/n=%d/p=%.1f", seed, n, p)

		t.Run(name, func(t *testing.T) {
			for _, k := range []int{1, 2, 3} {
				res, err := clique.BronKerbosch(g, clique.WithMinSize(k))
				require.NoError(t, err)
				require.NoError(t, clique.Verify(g.Snapshot(), res.Cliques, k))

				requireSameCliques(t, oracleNoPivot(g, k), res.Cliques, "no-pivot oracle, k=%d", k)
				requireSameCliques(t, oracleLocalPivot(g, k), res.Cliques, "local-pivot oracle, k=%d", k)
				requireSameCliques(t, oracleGonum(g, k), res.Cliques, "gonum oracle, k=%d", k)
			}
		})
	}
}

func TestBronKerbosch_ThresholdIsAFilter(t *testing.T) {
	for seed := int64(100); seed < 110; seed++ {
		g := randomGraph(t, seed, 20, 0.45)
		all, err := clique.BronKerbosch(g)
		require.NoError(t, err)

		for k := 0; k <= 6; k++ {
			var want []clique.Clique
			for _, c := range all.Cliques {
				if len(c) >= k {
					want = append(want, c)
				}
			}
			got, err := clique.BronKerbosch(g, clique.WithMinSize(k))
			require.NoError(t, err)
			requireSameCliques(t, want, got.Cliques, "seed %d k %d", seed, k)
			require.Equal(t, all.Stats.Leaves, got.Stats.Emitted+got.Stats.BelowThreshold)
		}
	}
}

func TestBronKerbosch_KnownFamilies(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want int // number of maximal cliques
		size int // size of each
	}{
		{"path", builder.Path(7), 6, 2},
		{"cycle", builder.Cycle(9), 9, 2},
		{"triangle", builder.Cycle(3), 1, 3},
		{"star", builder.Star(8), 7, 2},
		{"complete", builder.Complete(9), 1, 9},
		{"disjoint", builder.DisjointCliques(4, 4, 4), 3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			res, err := clique.BronKerbosch(g, clique.WithMinSize(1))
			require.NoError(t, err)
			require.Len(t, res.Cliques, tc.want)
			for _, c := range res.Cliques {
				require.Len(t, c, tc.size)
			}
		})
	}
}

// FuzzBronKerbosch decodes the input as a sequence of vertex pairs over a
// small ID range and checks the engine against the no-pivot oracle.
func FuzzBronKerbosch(f *testing.F) {
	f.Add([]byte{1, 2, 2, 3, 1, 3, 4, 5, 5, 6, 4, 6}, uint8(2))
	f.Add([]byte{1, 2}, uint8(3))
	f.Add([]byte{}, uint8(1))
	f.Add([]byte{7, 7, 7, 8}, uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, k uint8) {
		if len(data) > 80 {
			data = data[:80]
		}
		g := core.NewGraph()
		for i := 0; i+1 < len(data); i += 2 {
			g.AddEdge(core.VertexID(data[i]%14), core.VertexID(data[i+1]%14))
		}
		minSize := int(k % 6)

		res, err := clique.BronKerbosch(g, clique.WithMinSize(minSize))
		require.NoError(t, err)
		require.NoError(t, clique.Verify(g.Snapshot(), res.Cliques, minSize))
		requireSameCliques(t, oracleNoPivot(g, minSize), res.Cliques)
	})
}
