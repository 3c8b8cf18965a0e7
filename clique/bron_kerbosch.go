package clique

import (
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

// searcher encapsulates state shared by every frame of one search.
type searcher struct {
	snap  *core.Snapshot // read-only graph
	opts  Options        // search options
	out   *[]Clique      // result collection, owned by the top-level caller
	stats Stats          // diagnostics
}

// BronKerbosch enumerates every maximal clique of g with at least MinSize
// vertices. The graph is frozen into a core.Snapshot first and is never
// mutated. The returned cliques are sorted lexicographically.
//
// The top-level frame is R = ∅, P = V, X = ∅. On an empty graph with
// MinSize 0 the single maximal clique is the empty one.
func BronKerbosch(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Freeze the graph and seed the root frame
	snap := g.Snapshot()
	cliques := make([]Clique, 0)
	s := &searcher{snap: snap, opts: o, out: &cliques}
	p := snap.VertexSet()
	x := make(core.VertexSet)

	// 4. Search
	var err error
	if o.DegeneracyOrder && p.Len() > 0 {
		err = s.ordered(p, x)
	} else {
		err = s.expand(make(core.VertexSet), p, x, 0)
	}

	// 5. Sort away emission order; a partial result accompanies an abort
	SortCliques(cliques)

	return &Result{Cliques: cliques, Stats: s.stats}, err
}

// Search runs the pivoted Bron–Kerbosch recursion from the caller-supplied
// frame (r, p, x) and appends every maximal clique of size ≥ minSize to out.
//
// Preconditions, checked once before any work (ErrInvariantViolation):
//   - r is pairwise adjacent;
//   - r, p and x are pairwise disjoint;
//   - every vertex of p ∪ x is adjacent to every vertex of r;
//   - p ∪ x covers the common neighborhood of r (all of V when r = ∅).
//
// Vertices of p or x unknown to the snapshot are treated as isolated.
// p and x are consumed by the search; r is not modified.
func Search(r, p, x core.VertexSet, snap *core.Snapshot, minSize int, out *[]Clique) error {
	if snap == nil {
		return ErrGraphNil
	}
	if minSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMinSize, minSize)
	}
	if out == nil {
		return ErrNilOutput
	}
	if p == nil {
		p = make(core.VertexSet)
	}
	if x == nil {
		x = make(core.VertexSet)
	}
	if err := validateFrame(r, p, x, snap); err != nil {
		return err
	}

	o := DefaultOptions()
	o.MinSize = minSize
	s := &searcher{snap: snap, opts: o, out: out}

	return s.expand(r.Clone(), p, x, 0)
}

// expand is one frame of the recursion. It owns r, p and x.
func (s *searcher) expand(r, p, x core.VertexSet, depth int) error {
	// 1. Bookkeeping and cancellation check
	s.stats.Calls++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	// 2. Termination: R is maximal
	if p.Len() == 0 && x.Len() == 0 {
		return s.emit(r)
	}

	// 3. Pivot and candidate restriction
	u := s.pivot(p, x)
	candidates := p.Difference(s.snap.Neighbors(u)).Sorted()

	// 4. Branch on every non-neighbor of the pivot
	for _, v := range candidates {
		if err := s.branch(r, p, x, v, depth); err != nil {
			return err
		}
	}

	return nil
}

// branch recurses on R ∪ {v}, P ∩ N(v), X ∩ N(v), then moves v from p to x.
func (s *searcher) branch(r, p, x core.VertexSet, v core.VertexID, depth int) error {
	nv := s.snap.Neighbors(v)
	child := r.Clone()
	child.Add(v)
	if err := s.expand(child, p.Intersect(nv), x.Intersect(nv), depth+1); err != nil {
		return err
	}
	p.Remove(v)
	x.Add(v)

	return nil
}

// ordered is the root frame in degeneracy order: every vertex is branched on
// without pivot restriction, lowest-degeneracy first.
func (s *searcher) ordered(p, x core.VertexSet) error {
	s.stats.Calls++
	r := make(core.VertexSet)
	order, _ := DegeneracyOrder(s.snap)
	for _, v := range order {
		if err := s.branch(r, p, x, v, 0); err != nil {
			return err
		}
	}

	return nil
}

// pivot returns the vertex of P ∪ X with the largest total degree in the
// graph; ties go to the smallest ID so the choice is independent of map order.
// Callers guarantee P ∪ X ≠ ∅.
func (s *searcher) pivot(p, x core.VertexSet) core.VertexID {
	var (
		best    core.VertexID
		bestDeg = -1
	)
	for _, set := range [2]core.VertexSet{p, x} {
		for v := range set {
			d := s.snap.Degree(v)
			if d > bestDeg || (d == bestDeg && v < best) {
				best, bestDeg = v, d
			}
		}
	}

	return best
}

// emit applies the inclusive threshold and appends R as a sorted record.
func (s *searcher) emit(r core.VertexSet) error {
	s.stats.Leaves++
	if r.Len() < s.opts.MinSize {
		s.stats.BelowThreshold++
		return nil
	}

	c := Clique(r.Sorted())
	if s.opts.OnClique != nil {
		if err := s.opts.OnClique(c); err != nil {
			return fmt.Errorf("clique: OnClique hook for %v: %w", c, err)
		}
	}
	*s.out = append(*s.out, c)
	s.stats.Emitted++

	return nil
}

// validateFrame checks the Search preconditions.
// Complexity: O(|R|² + |R|·(|P|+|X|) + V)
func validateFrame(r, p, x core.VertexSet, snap *core.Snapshot) error {
	// R is a clique so far
	members := r.Sorted()
	for i, a := range members {
		for _, b := range members[i+1:] {
			if !snap.Adjacent(a, b) {
				return fmt.Errorf("%w: R members %d and %d are not adjacent", ErrInvariantViolation, a, b)
			}
		}
	}

	// R, P, X pairwise disjoint
	for v := range p {
		if x.Has(v) {
			return fmt.Errorf("%w: vertex %d is in both P and X", ErrInvariantViolation, v)
		}
		if r.Has(v) {
			return fmt.Errorf("%w: vertex %d is in both R and P", ErrInvariantViolation, v)
		}
	}
	for v := range x {
		if r.Has(v) {
			return fmt.Errorf("%w: vertex %d is in both R and X", ErrInvariantViolation, v)
		}
	}

	// P ∪ X lies inside the common neighborhood of R
	for _, set := range [2]core.VertexSet{p, x} {
		for v := range set {
			for _, a := range members {
				if !snap.Adjacent(a, v) {
					return fmt.Errorf("%w: candidate %d is not adjacent to R member %d", ErrInvariantViolation, v, a)
				}
			}
		}
	}

	// and covers all of it
	for _, v := range commonNeighborhood(snap, members) {
		if !p.Has(v) && !x.Has(v) {
			return fmt.Errorf("%w: common neighbor %d of R is in neither P nor X", ErrInvariantViolation, v)
		}
	}

	return nil
}

// commonNeighborhood returns ∩_{a ∈ members} N(a), or every vertex when
// members is empty, in ascending order.
func commonNeighborhood(snap *core.Snapshot, members []core.VertexID) []core.VertexID {
	if len(members) == 0 {
		return snap.Vertices()
	}
	common := snap.Neighbors(members[0]).Clone()
	for _, a := range members[1:] {
		common = common.Intersect(snap.Neighbors(a))
	}

	return common.Sorted()
}
