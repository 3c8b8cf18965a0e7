// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Mutation and query methods of Graph.
// Determinism:
//   - Vertices() and Edges() return ascending results; Neighbors() is a set.
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock.

package core

// AddEdge connects u and v. It inserts v into N(u) and u into N(v), which is
// the only mechanism that makes the graph undirected: callers must not assume
// their input is already symmetric. Repeating an edge is a no-op.
//
// A self-loop (u == v) registers u as a vertex and is remembered for HasEdge
// and EdgeCount, but u never becomes its own neighbor in a Snapshot.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nu := g.ensure(u)
	if u == v {
		if !nu.Has(u) {
			nu.Add(u)
			g.loops++
		}

		return
	}
	nu.Add(v)
	g.ensure(v).Add(u)
}

// ensure returns N(id), creating the entry on first use. Caller holds g.mu.
func (g *Graph) ensure(id VertexID) VertexSet {
	n, ok := g.adjacency[id]
	if !ok {
		n = make(VertexSet)
		g.adjacency[id] = n
	}

	return n
}

// HasVertex reports whether id takes part in at least one edge.
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether u and v are connected. HasEdge(u, v) == HasEdge(v, u).
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[u].Has(v)
}

// Neighbors returns a copy of N(id) without id itself. A vertex with no
// entry yields an empty set, never an error.
// Complexity: O(d)
func (g *Graph) Neighbors(id VertexID) VertexSet {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.adjacency[id].Clone()
	out.Remove(id)

	return out
}

// Degree returns the number of distinct neighbors of id, self excluded.
// Missing vertices have degree 0.
// Complexity: O(1)
func (g *Graph) Degree(id VertexID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return degreeOf(g.adjacency[id], id)
}

// degreeOf is |n \ {self}|.
func degreeOf(n VertexSet, self VertexID) int {
	if n.Has(self) {
		return len(n) - 1
	}

	return len(n)
}

// Vertices returns every vertex ID in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexID, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// Edges returns each undirected edge once with U ≤ V, ordered by (U, V).
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for u, n := range g.adjacency {
		for v := range n {
			if u <= v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sortEdges(out)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of distinct undirected edges; a self-loop counts once.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ends := 0
	for _, n := range g.adjacency {
		ends += len(n)
	}
	// every proper edge contributes two endpoints, every loop one.
	return (ends-g.loops)/2 + g.loops
}

// Clone returns a deep copy of g.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency: make(map[VertexID]VertexSet, len(g.adjacency)),
		loops:     g.loops,
	}
	for id, n := range g.adjacency {
		out.adjacency[id] = n.Clone()
	}

	return out
}

// Equal reports whether g and other hold exactly the same vertices and edges.
// Complexity: O(V+E)
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(g.adjacency) != len(other.adjacency) || g.loops != other.loops {
		return false
	}
	for id, n := range g.adjacency {
		m, ok := other.adjacency[id]
		if !ok || len(m) != len(n) {
			return false
		}
		for v := range n {
			if !m.Has(v) {
				return false
			}
		}
	}

	return true
}
