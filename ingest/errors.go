package ingest

import (
	"errors"
	"fmt"
)

// Sentinel errors for CSV ingestion.
var (
	// ErrMalformedRow indicates a row with a missing column or a value that
	// is not an unsigned 32-bit integer.
	ErrMalformedRow = errors.New("ingest: malformed row")

	// ErrBadBool indicates a boolean cell other than True/False.
	ErrBadBool = errors.New("ingest: invalid boolean")

	// ErrMissingColumn indicates a target table without a required header.
	ErrMissingColumn = errors.New("ingest: missing required column")

	// ErrDuplicateNode indicates a target table listing one ID twice.
	ErrDuplicateNode = errors.New("ingest: duplicate node")
)

// ParseError locates a failure inside an input file.
type ParseError struct {
	Line   int    // 1-based line number in the input
	Column string // column name or position, e.g. "to" or "#2"
	Err    error  // wraps one of the sentinels above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ingest: line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
