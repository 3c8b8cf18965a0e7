// File: snapshot.go
// Role: Immutable, lock-free read view of a Graph handed to algorithms.
// Determinism:
//   - Vertices() is ascending; neighbor sets are unordered.
// Concurrency:
//   - Built under the source read lock; afterwards no locks are taken and the
//     Snapshot may be shared freely. Callers must treat returned sets as read-only.

package core

import "sort"

// Snapshot is a frozen copy of a Graph's adjacency with self-loops removed.
// It is the read-only shared state of a whole search: nothing in lvclique
// mutates a Snapshot after construction.
type Snapshot struct {
	adjacency map[VertexID]VertexSet
	vertices  []VertexID
}

// Snapshot copies the current adjacency of g. Later mutations of g are not
// observed by the returned Snapshot, and nothing done through the Snapshot
// reaches g.
// Complexity: O(V+E)
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		adjacency: make(map[VertexID]VertexSet, len(g.adjacency)),
		vertices:  make([]VertexID, 0, len(g.adjacency)),
	}
	for id, n := range g.adjacency {
		c := n.Clone()
		c.Remove(id)
		s.adjacency[id] = c
		s.vertices = append(s.vertices, id)
	}
	sortIDs(s.vertices)

	return s
}

// Neighbors returns N(id) without id itself. The returned set is shared and
// must not be modified. A missing vertex yields nil, which reads as empty.
// Complexity: O(1)
func (s *Snapshot) Neighbors(id VertexID) VertexSet {
	return s.adjacency[id]
}

// Degree returns |N(id)|; 0 for a missing vertex.
func (s *Snapshot) Degree(id VertexID) int {
	return len(s.adjacency[id])
}

// Has reports whether id is a vertex of the snapshot.
func (s *Snapshot) Has(id VertexID) bool {
	_, ok := s.adjacency[id]
	return ok
}

// Adjacent reports whether u and v are distinct and connected.
func (s *Snapshot) Adjacent(u, v VertexID) bool {
	return s.adjacency[u].Has(v)
}

// Vertices returns all vertex IDs ascending. The slice is a copy.
func (s *Snapshot) Vertices() []VertexID {
	out := make([]VertexID, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// VertexSet returns a fresh set holding every vertex; the usual initial P.
// Complexity: O(V)
func (s *Snapshot) VertexSet() VertexSet {
	return NewVertexSet(s.vertices...)
}

// VertexCount returns |V|.
func (s *Snapshot) VertexCount() int { return len(s.vertices) }

// sortEdges orders edges by (U, V) ascending.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
}
