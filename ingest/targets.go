package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvclique/core"
)

// NodeStats is the per-vertex attribute record of a target table.
type NodeStats struct {
	ID      core.VertexID `json:"id"`
	Views   uint32        `json:"views"`
	Mature  bool          `json:"mature"`
	Partner bool          `json:"partner"`
}

// Target table column names.
const (
	ColID      = "new_id"
	ColViews   = "views"
	ColMature  = "mature"
	ColPartner = "partner"
)

var requiredColumns = []string{ColID, ColViews, ColMature, ColPartner}

// ReadTargets loads a target table keyed by vertex ID. Columns are located
// by header name, so extra columns and any column order are accepted.
func ReadTargets(r io.Reader, opts ...Option) (map[core.VertexID]NodeStats, error) {
	o := resolve(opts)
	cr := newReader(r, o.Comma)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, csvError(err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	out := make(map[core.VertexID]NodeStats)
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
		ns, err := parseTarget(rec, idx, line)
		if err != nil {
			return nil, err
		}
		if _, dup := out[ns.ID]; dup {
			return nil, &ParseError{Line: line, Column: ColID, Err: fmt.Errorf("%w: %d", ErrDuplicateNode, ns.ID)}
		}
		out[ns.ID] = ns
	}

	return out, nil
}

// LoadTargets opens path and delegates to ReadTargets.
func LoadTargets(path string, opts ...Option) (map[core.VertexID]NodeStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open targets: %w", err)
	}
	defer f.Close()

	t, err := ReadTargets(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func parseTarget(rec []string, idx map[string]int, line int) (NodeStats, error) {
	cell := func(name string) (string, error) {
		i := idx[name]
		if i >= len(rec) {
			return "", &ParseError{Line: line, Column: name, Err: fmt.Errorf("%w: column missing", ErrMalformedRow)}
		}
		return strings.TrimSpace(rec[i]), nil
	}

	var ns NodeStats
	s, err := cell(ColID)
	if err != nil {
		return ns, err
	}
	if ns.ID, err = parseID(s, line, ColID); err != nil {
		return ns, err
	}

	if s, err = cell(ColViews); err != nil {
		return ns, err
	}
	views, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return ns, &ParseError{Line: line, Column: ColViews, Err: fmt.Errorf("%w: %q is not a view count", ErrMalformedRow, s)}
	}
	ns.Views = uint32(views)

	if s, err = cell(ColMature); err != nil {
		return ns, err
	}
	if ns.Mature, err = parseBool(s, line, ColMature); err != nil {
		return ns, err
	}
	if s, err = cell(ColPartner); err != nil {
		return ns, err
	}
	if ns.Partner, err = parseBool(s, line, ColPartner); err != nil {
		return ns, err
	}

	return ns, nil
}

func parseBool(s string, line int, column string) (bool, error) {
	switch s {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	}

	return false, &ParseError{Line: line, Column: column, Err: fmt.Errorf("%w: %q", ErrBadBool, s)}
}
