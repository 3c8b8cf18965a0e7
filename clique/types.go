// Package clique defines options, results and sentinel errors for maximal
// clique enumeration.
package clique

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvclique/core"
)

// Sentinel errors for clique search.
var (
	// ErrGraphNil is returned when a nil graph or snapshot is supplied.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrInvalidMinSize is returned when the minimum clique size is negative.
	ErrInvalidMinSize = errors.New("clique: minimum size must be non-negative")

	// ErrInvariantViolation reports a frame whose R, P and X break the search
	// preconditions. It is a programming error of the caller.
	ErrInvariantViolation = errors.New("clique: search frame invariant violated")

	// ErrNilOutput is returned when Search has nowhere to append results.
	ErrNilOutput = errors.New("clique: output slice is nil")

	// ErrNotClique, ErrNotMaximal, ErrBelowThreshold and ErrDuplicateClique
	// are reported by Verify.
	ErrNotClique       = errors.New("clique: vertices are not pairwise adjacent")
	ErrNotMaximal      = errors.New("clique: clique is not maximal")
	ErrBelowThreshold  = errors.New("clique: clique is smaller than the minimum size")
	ErrDuplicateClique = errors.New("clique: clique reported more than once")
)

// Clique is a clique record: vertex IDs in strictly ascending order.
// It is created at a leaf of the search and never mutated afterwards.
type Clique []core.VertexID

// Option configures BronKerbosch via functional arguments. Invalid values
// are recorded and surfaced as errors when the search starts.
type Option func(*Options)

// Options holds the parameters of a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MinSize is the inclusive lower bound on reported clique sizes.
	MinSize int

	// OnClique, if non-nil, is invoked for every emitted clique before it is
	// appended to the result. Returning an error aborts the search.
	OnClique func(c Clique) error

	// DegeneracyOrder makes the top level iterate all vertices in
	// degeneracy order instead of pivoting over the full vertex set.
	DegeneracyOrder bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - MinSize 0 (every maximal clique)
//   - no hook
//   - pivoted top level
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MinSize: 0,
	}
}

// WithContext sets a context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMinSize sets the inclusive minimum clique size.
//
//	k ≥ 0: report maximal cliques with |C| ≥ k
//	k < 0: invalid option → ErrInvalidMinSize
func WithMinSize(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrInvalidMinSize, k)
			return
		}
		o.MinSize = k
	}
}

// WithOnClique installs fn as the emission hook.
func WithOnClique(fn func(c Clique) error) Option {
	return func(o *Options) {
		o.OnClique = fn
	}
}

// WithDegeneracyOrder enables the degeneracy-ordered outer loop.
func WithDegeneracyOrder() Option {
	return func(o *Options) {
		o.DegeneracyOrder = true
	}
}

// Stats reports how the recursion unfolded.
type Stats struct {
	// Calls counts search frames, the root included.
	Calls int
	// Leaves counts frames that terminated with P = X = ∅ (maximal cliques).
	Leaves int
	// Emitted counts cliques appended to the result.
	Emitted int
	// BelowThreshold counts maximal cliques dropped by MinSize.
	BelowThreshold int
	// MaxDepth is the deepest frame reached; the root has depth 0.
	MaxDepth int
}

// Result is the outcome of BronKerbosch.
type Result struct {
	// Cliques holds every maximal clique with size ≥ MinSize, sorted
	// lexicographically (see SortCliques).
	Cliques []Clique

	// Stats describes the search tree.
	Stats Stats
}
