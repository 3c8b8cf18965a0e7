// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every neighbor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(0, core.VertexID(id+1))
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, g.Degree(0))
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentSnapshotAndAdd mixes writers and snapshot readers; the test
// passes if the race detector stays quiet and every snapshot is symmetric.
func TestConcurrentSnapshotAndAdd(t *testing.T) {
	g := core.NewGraph()
	const rounds = 100
	snaps := make(chan *core.Snapshot, rounds)
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(core.VertexID(id), core.VertexID(id+1))
		}(i)
		go func() {
			defer wg.Done()
			snaps <- g.Snapshot()
		}()
	}
	wg.Wait()
	close(snaps)

	for s := range snaps {
		for _, u := range s.Vertices() {
			for v := range s.Neighbors(u) {
				require.True(t, s.Adjacent(v, u), "snapshot lost symmetry for %d-%d", u, v)
			}
		}
	}
}
