// Package builder provides deterministic, composable graph fixtures for
// lvclique: classic topologies with known clique structure and seeded random
// graphs for property tests and the `generate` command.
//
// The package offers the following key components:
//
//   - BuildGraph(bopts, cons...): one orchestrator that creates a core.Graph,
//     resolves the builder configuration and runs constructors in order.
//   - Constructors:
//     – Complete(n):          K_n, a single maximal clique of size n.
//     – Path(n):              P_n, n-1 maximal cliques of size 2.
//     – Cycle(n):             C_n; K_3 for n = 3, otherwise n maximal edges.
//     – Star(n):              hub plus n-1 leaves.
//     – RandomSparse(n, p):   Erdős–Rényi G(n, p) over unordered pairs.
//     – DisjointCliques(s...): a disjoint union of complete graphs.
//   - Options:
//     – WithSeed / WithRand: reproducible randomness.
//     – WithIDOffset:        first vertex identifier (default 0).
//
// Guarantees:
//
//   - Every constructor allocates fresh consecutive vertex IDs, so several
//     constructors compose into a disjoint union.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with
//     the constructor name. Option constructors panic on nil arguments.
//
// A vertex that ends up with no edge does not exist in a core.Graph, so the
// vertex count of a sparse random graph may be lower than n.
package builder
