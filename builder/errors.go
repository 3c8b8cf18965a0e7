// SPDX-License-Identifier: MIT
// Package: lvclique/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with builderErrorf (method prefix + %w).

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed indicates a structural failure such as a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrIDSpaceExhausted indicates that allocating vertices would overflow VertexID.
	ErrIDSpaceExhausted = errors.New("builder: vertex ID space exhausted")
)

// builderErrorf prefixes err with the constructor name and detail while
// keeping the sentinel reachable through errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
