package bfs

import (
	"errors"

	"github.com/katalvlaran/lvclique/core"
)

var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex has no edges.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Result is the reachable set of one start vertex.
type Result struct {
	// Order lists reached vertices in visit sequence; Order[0] is the start.
	Order []core.VertexID
	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[core.VertexID]int
}
