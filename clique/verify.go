package clique

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvclique/core"
)

// IsClique reports whether every pair of distinct vertices in c is adjacent.
// Complexity: O(|c|²)
func IsClique(snap *core.Snapshot, c Clique) bool {
	for i, a := range c {
		for _, b := range c[i+1:] {
			if a == b || !snap.Adjacent(a, b) {
				return false
			}
		}
	}

	return true
}

// IsMaximal reports whether no vertex outside c is adjacent to all of c.
// The empty clique is maximal only in an empty graph.
// Complexity: O(d·|c|) where d is the degree of c[0].
func IsMaximal(snap *core.Snapshot, c Clique) bool {
	if len(c) == 0 {
		return snap.VertexCount() == 0
	}
	in := core.NewVertexSet(c...)
	for w := range snap.Neighbors(c[0]) {
		if in.Has(w) {
			continue
		}
		extends := true
		for _, a := range c[1:] {
			if !snap.Adjacent(a, w) {
				extends = false
				break
			}
		}
		if extends {
			return false
		}
	}

	return true
}

// Verify checks a result set against the graph: every clique must be a
// sorted, valid, maximal clique of at least minSize vertices, reported once.
// The first violation is returned wrapped around one of ErrNotClique,
// ErrNotMaximal, ErrBelowThreshold or ErrDuplicateClique.
func Verify(snap *core.Snapshot, cliques []Clique, minSize int) error {
	if snap == nil {
		return ErrGraphNil
	}
	seen := make(map[string]struct{}, len(cliques))
	for i, c := range cliques {
		if !sort.SliceIsSorted(c, func(a, b int) bool { return c[a] < c[b] }) {
			return fmt.Errorf("clique %d %v: not sorted: %w", i, c, ErrNotClique)
		}
		if !IsClique(snap, c) {
			return fmt.Errorf("clique %d %v: %w", i, c, ErrNotClique)
		}
		if !IsMaximal(snap, c) {
			return fmt.Errorf("clique %d %v: %w", i, c, ErrNotMaximal)
		}
		if len(c) < minSize {
			return fmt.Errorf("clique %d %v: size %d < %d: %w", i, c, len(c), minSize, ErrBelowThreshold)
		}
		k := c.Key()
		if _, dup := seen[k]; dup {
			return fmt.Errorf("clique %d %v: %w", i, c, ErrDuplicateClique)
		}
		seen[k] = struct{}{}
	}

	return nil
}

// Key returns a canonical string form of c, e.g. "1,2,3".
func (c Clique) Key() string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}

	return b.String()
}

// Compare lexicographically compares a and b element by element; a proper
// prefix sorts first. Returns -1, 0 or +1.
func Compare(a, b Clique) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// SortCliques orders cliques lexicographically in place.
func SortCliques(cliques []Clique) {
	sort.Slice(cliques, func(i, j int) bool { return Compare(cliques[i], cliques[j]) < 0 })
}
