package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

// walker holds the frontier of one traversal.
type walker struct {
	ctx   context.Context
	snap  *core.Snapshot
	queue []core.VertexID
	res   *Result
}

// BFS explores the component of start in g. The graph is read through a
// Snapshot, so concurrent writers do not disturb the traversal. On
// cancellation the partial Result is returned with ctx.Err().
func BFS(ctx context.Context, g *core.Graph, start core.VertexID) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	snap := g.Snapshot()
	if !snap.Has(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	return walk(ctx, snap, start)
}

// walk is shared by BFS and Components.
func walk(ctx context.Context, snap *core.Snapshot, start core.VertexID) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	w := &walker{
		ctx:   ctx,
		snap:  snap,
		queue: []core.VertexID{start},
		res: &Result{
			Order: []core.VertexID{start},
			Depth: map[core.VertexID]int{start: 0},
		},
	}

	return w.res, w.loop()
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[0]
		w.queue = w.queue[1:]
		next := w.res.Depth[cur] + 1
		// ascending neighbors keep Order reproducible
		for _, nbr := range w.snap.Neighbors(cur).Sorted() {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Depth[nbr] = next
			w.res.Order = append(w.res.Order, nbr)
			w.queue = append(w.queue, nbr)
		}
	}

	return nil
}
