// Package core provides the undirected, unweighted in-memory Graph used by
// every lvclique algorithm, together with the VertexSet primitive the clique
// search is written against.
//
// The Graph G = (V,E) is a map from vertex identifier to its neighbor set:
//
//   - Symmetric by construction: AddEdge(u, v) records v ∈ N(u) and u ∈ N(v).
//   - Deduplicated: repeated edges are absorbed by the neighbor sets.
//   - Sparse keys: a vertex appears only once it takes part in an edge.
//     Lookups of a missing vertex behave exactly like an empty neighbor set.
//   - Self-loops are stored (HasEdge(v, v) reports them) but are never
//     exposed through Snapshot.Neighbors, so no consumer treats a vertex as
//     its own neighbor.
//
// Concurrency:
//
//	Graph guards its adjacency with a single sync.RWMutex, so ingestion code
//	may add edges from several goroutines. Algorithms do not read a live Graph;
//	they take an immutable Snapshot once and share it lock-free for the whole
//	run.
//
// Core Methods:
//
//	NewGraph() *Graph                     // O(1)
//	FromEdges(edges []Edge) *Graph        // O(E)
//	AddEdge(u, v VertexID)                // O(1)
//	HasVertex(v) bool / HasEdge(u, v) bool
//	Neighbors(v) VertexSet                // O(d) copy
//	Degree(v) int                         // O(1)
//	Vertices() []VertexID                 // O(V log V), ascending
//	Edges() []Edge                        // O(E log E), U ≤ V, ascending
//	VertexCount() int / EdgeCount() int
//	Clone() *Graph / Equal(other) bool
//	Snapshot() *Snapshot                  // O(V+E) immutable copy
//
// Errors:
//
//	ErrGraphNil – a nil *Graph was handed to a constructor or algorithm.
package core
