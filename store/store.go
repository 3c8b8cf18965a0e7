// Package store persists the outcome of lvclique runs.
//
// Two embedded backends implement Store: SQLite (modernc.org/sqlite, one row
// per run) and BadgerDB (JSON documents under run/<id>). Open selects one
// from Config.Driver.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/stats"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
)

// Sentinel errors.
var (
	// ErrNotFound is returned by Load for an unknown run ID.
	ErrNotFound = errors.New("store: run not found")
	// ErrUnknownDriver is returned by Open for an unsupported driver name.
	ErrUnknownDriver = errors.New("store: unknown driver")
	// ErrInvalidRun is returned by Save for a run without an ID.
	ErrInvalidRun = errors.New("store: invalid run")
)

// Run is one persisted enumeration.
type Run struct {
	ID               string          `json:"id"`
	CreatedAt        time.Time       `json:"created_at"`
	Source           string          `json:"source"`
	MinSize          int             `json:"min_size"`
	Vertices         int             `json:"vertices"`
	Edges            int             `json:"edges"`
	Components       int             `json:"components"`
	LargestComponent int             `json:"largest_component"`
	Stats            clique.Stats    `json:"stats"`
	Cliques          []clique.Clique `json:"cliques"`
	Summaries        []stats.Summary `json:"summaries,omitempty"`
}

// NewRun returns a Run with a fresh random ID and the current UTC time.
func NewRun(source string, minSize int) *Run {
	return &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Source:    source,
		MinSize:   minSize,
	}
}

// Store saves and retrieves runs. Implementations are safe for concurrent use.
type Store interface {
	// Save inserts or replaces r.
	Save(ctx context.Context, r *Run) error
	// Load returns the run with the given ID or ErrNotFound.
	Load(ctx context.Context, id string) (*Run, error)
	// List returns every run, newest first.
	List(ctx context.Context) ([]Run, error)
	// Close releases the backend.
	Close() error
}

// Config selects and locates a backend.
type Config struct {
	Driver string // DriverSQLite or DriverBadger
	Path   string // database file (sqlite) or directory (badger)
	// InMemory keeps everything in RAM; used by tests.
	InMemory bool
}

// Open creates the configured backend. A nil logger is replaced by zap.NewNop.
func Open(cfg Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("driver", cfg.Driver))

	switch cfg.Driver {
	case DriverSQLite:
		return OpenSQLite(cfg, logger)
	case DriverBadger:
		return OpenBadger(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func validate(r *Run) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRun)
	}

	return nil
}

// sortNewestFirst orders runs by CreatedAt descending, then ID.
func sortNewestFirst(runs []Run) {
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.After(runs[j].CreatedAt)
		}
		return runs[i].ID < runs[j].ID
	})
}
