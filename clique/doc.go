// Package clique enumerates the maximal cliques of a core.Graph with the
// pivoted Bron–Kerbosch algorithm and reports those meeting a minimum size.
//
// A search frame carries three disjoint vertex sets:
//
//	R – vertices committed to the clique being built (pairwise adjacent)
//	P – candidates that may still extend R
//	X – vertices whose cliques were already reported by an earlier sibling
//
// Each call either terminates (P = X = ∅: R is maximal and is emitted when
// |R| ≥ MinSize) or picks a pivot u ∈ P ∪ X of maximum total degree, then
// branches only on P \ N(u) in ascending ID order. After each branch on v,
// v moves from P to X in the current frame. Every child receives freshly
// derived sets (R ∪ {v}, P ∩ N(v), X ∩ N(v)), so a callee can never observe
// or corrupt its caller's live sets.
//
// Key features:
//   - BronKerbosch(g, opts...): top-level driver over a frozen core.Snapshot
//   - Search(R, P, X, snap, minSize, &out): the frame-level contract, with
//     precondition checks that fail with ErrInvariantViolation
//   - Inclusive threshold: a maximal clique is reported iff |R| ≥ MinSize.
//     MinSize 0 also reports the empty clique of an empty graph.
//   - Verify / IsClique / IsMaximal to check any result set against a graph
//   - DegeneracyOrder for the BronKerbosch3-style outer loop
//
// Determinism:
//
//	Pivot ties go to the smallest vertex ID and candidates are visited in
//	ascending order, so emission order is reproducible for a given graph.
//	BronKerbosch still sorts its output lexicographically; callers of Search
//	should do the same (SortCliques) before comparing results.
//
// Complexity:
//
//   - Time:   O(3^{n/3}) in the worst case (Moon–Moser bound), each call
//     paying O(|P|+|X|) for pivoting and set intersections.
//   - Memory: O(n) frames deep, each owning copies of its R, P and X.
//
// Options:
//
//   - WithMinSize(k)          minimum reported clique size (k ≥ 0, default 0).
//   - WithContext(ctx)        cancellation, checked once per call.
//   - WithOnClique(fn)        hook on every emitted clique; error aborts.
//   - WithDegeneracyOrder()   iterate the top level in degeneracy order.
//
// Errors:
//
//   - ErrGraphNil             if g or the snapshot is nil.
//   - ErrInvalidMinSize       if the minimum size is negative.
//   - ErrInvariantViolation   if a caller-built frame breaks R/P/X preconditions.
//   - ErrNilOutput            if Search receives no result slice.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnClique.
package clique
