package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvclique/core"
)

// ReadEdges builds an undirected core.Graph from an edge-list CSV. Every row
// contributes u→v and v→u; duplicates collapse. On any malformed row the
// read aborts and the returned error is a *ParseError wrapping
// ErrMalformedRow.
func ReadEdges(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := resolve(opts)
	cr := newReader(r, o.Comma)

	g := core.NewGraph()
	first := true
	for {
		if err := o.interrupted(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		line, _ := cr.FieldPos(0)
		if first && o.Header {
			first = false
			continue
		}
		first = false

		if len(rec) < 2 {
			return nil, &ParseError{Line: line, Column: "#2", Err: fmt.Errorf("%w: want 2 columns, got %d", ErrMalformedRow, len(rec))}
		}
		u, err := parseID(rec[0], line, "#1")
		if err != nil {
			return nil, err
		}
		v, err := parseID(rec[1], line, "#2")
		if err != nil {
			return nil, err
		}
		g.AddEdge(u, v)
	}

	return g, nil
}

// LoadEdges opens path and delegates to ReadEdges.
func LoadEdges(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open edges: %w", err)
	}
	defer f.Close()

	g, err := ReadEdges(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteEdges emits g as an edge list with a from,to header (unless disabled),
// one row per undirected edge in (U, V) order.
func WriteEdges(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return core.ErrGraphNil
	}
	o := resolve(opts)
	cw := csv.NewWriter(w)
	cw.Comma = o.Comma

	if o.Header {
		if err := cw.Write([]string{"from", "to"}); err != nil {
			return fmt.Errorf("ingest: write header: %w", err)
		}
	}
	for _, e := range g.Edges() {
		rec := []string{
			strconv.FormatUint(uint64(e.U), 10),
			strconv.FormatUint(uint64(e.V), 10),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("ingest: write edge %d-%d: %w", e.U, e.V, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func newReader(r io.Reader, comma rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// csvError turns a reader failure into a *ParseError where possible.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Column: "#" + strconv.Itoa(pe.Column), Err: fmt.Errorf("%w: %v", ErrMalformedRow, pe.Err)}
	}

	return fmt.Errorf("ingest: read: %w", err)
}

func parseID(s string, line int, column string) (core.VertexID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, &ParseError{Line: line, Column: column, Err: fmt.Errorf("%w: %q is not a vertex id", ErrMalformedRow, s)}
	}

	return core.VertexID(n), nil
}
