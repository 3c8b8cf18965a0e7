// Package core defines the central Graph, Edge and VertexSet types.
//
// All Graph APIs take the internal sync.RWMutex, so a Graph may be populated
// from several goroutines. Snapshot is the lock-free, read-only counterpart
// handed to algorithms.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates that a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")
)

// VertexID identifies a vertex. It carries no meaning beyond identity and is
// stable for the lifetime of a run.
type VertexID uint32

// Edge is an unordered vertex pair. Direction is irrelevant: Edge{U: 1, V: 2}
// and Edge{U: 2, V: 1} describe the same connection.
type Edge struct {
	U VertexID
	V VertexID
}

// Graph is the undirected adjacency structure.
//
// adjacency[u] holds N(u). The map is kept symmetric by AddEdge; a vertex that
// never took part in an edge has no key.
type Graph struct {
	mu sync.RWMutex // guards adjacency and loops

	adjacency map[VertexID]VertexSet
	loops     int // number of distinct self-loops, for EdgeCount
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[VertexID]VertexSet),
	}
}

// FromEdges builds a Graph from an edge sequence. Every pair is inserted in
// both directions; duplicates are idempotent.
// Complexity: O(E)
func FromEdges(edges []Edge) *Graph {
	g := NewGraph()
	for _, e := range edges {
		g.AddEdge(e.U, e.V)
	}

	return g
}
