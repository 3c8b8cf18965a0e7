// Package bfs answers reachability questions about a core.Graph before the
// clique search runs: which vertices share a component, and how far apart.
//
// A maximal clique never spans two components, so the component count and
// the size of the largest one bound what the search can find. lvclique
// reports both for every run.
//
//   - BFS(ctx, g, start) returns the vertices reachable from start, in hop
//     order, with their distances.
//   - Components(ctx, g) splits the graph into connected components.
//
// Neighbors are expanded in ascending ID order, so results are reproducible.
// Self-loops are invisible. Both functions stop on ctx cancellation.
package bfs
