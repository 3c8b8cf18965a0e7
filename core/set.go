// File: set.go
// Role: VertexSet, the owned set value the clique search copies per frame.
// Determinism:
//   - Map iteration order is random; Sorted() is the only ordered view.
// Concurrency:
//   - A VertexSet is a plain map. It is owned by one goroutine at a time.

package core

import "sort"

// VertexSet is an unordered, deduplicated set of vertex identifiers.
// The nil VertexSet is a valid empty set for every read-only method.
type VertexSet map[VertexID]struct{}

// NewVertexSet returns a set holding ids.
func NewVertexSet(ids ...VertexID) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts id into s.
func (s VertexSet) Add(id VertexID) { s[id] = struct{}{} }

// Remove deletes id from s; removing a missing id is a no-op.
func (s VertexSet) Remove(id VertexID) { delete(s, id) }

// Has reports whether id is a member of s.
func (s VertexSet) Has(id VertexID) bool {
	_, ok := s[id]
	return ok
}

// Len returns |s|.
func (s VertexSet) Len() int { return len(s) }

// Clone returns an independent copy of s. Cloning nil yields an empty, non-nil set.
// Complexity: O(|s|)
func (s VertexSet) Clone() VertexSet {
	out := make(VertexSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Intersect returns a fresh set s ∩ other. It iterates the smaller operand.
// Complexity: O(min(|s|, |other|))
func (s VertexSet) Intersect(other VertexSet) VertexSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(VertexSet, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Difference returns a fresh set s \ other.
// Complexity: O(|s|)
func (s VertexSet) Difference(other VertexSet) VertexSet {
	out := make(VertexSet, len(s))
	for id := range s {
		if _, ok := other[id]; !ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Union returns a fresh set s ∪ other.
// Complexity: O(|s| + |other|)
func (s VertexSet) Union(other VertexSet) VertexSet {
	out := make(VertexSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}

	return out
}

// Sorted returns the members of s in ascending order.
// Complexity: O(|s| log |s|)
func (s VertexSet) Sorted() []VertexID {
	out := make([]VertexID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// sortIDs sorts ids ascending in place.
func sortIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
