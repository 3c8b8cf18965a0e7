package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	sqliteDriverName = "sqlite"
	maxAttempts      = 5
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
  id                TEXT PRIMARY KEY,
  created_at_utc    TEXT NOT NULL,
  source            TEXT NOT NULL,
  min_size          INTEGER NOT NULL,
  vertex_count      INTEGER NOT NULL,
  edge_count        INTEGER NOT NULL,
  component_count   INTEGER NOT NULL,
  largest_component INTEGER NOT NULL,
  search_stats      TEXT NOT NULL,
  cliques           TEXT NOT NULL,
  summaries         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_created_at ON runs(created_at_utc);
`

// SQLiteStore keeps one row per run; cliques and stats are JSON columns.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	logger *zap.Logger
}

// OpenSQLite opens (creating if needed) the database at cfg.Path and
// ensures the schema exists.
func OpenSQLite(cfg Config, logger *zap.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var dsn string
	if cfg.InMemory {
		dsn = "file::memory:?_pragma=foreign_keys(ON)"
	} else {
		path := strings.TrimSpace(cfg.Path)
		if path == "" {
			return nil, fmt.Errorf("store: sqlite path must not be empty")
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return nil, fmt.Errorf("store: sqlite path %q is a directory, expected file", path)
		}
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create directory %q: %w", dir, err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(2000)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	// one connection keeps an in-memory database alive and serializes writers
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	logger.Debug("sqlite store opened", zap.String("path", cfg.Path), zap.Bool("in_memory", cfg.InMemory))

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(ctx context.Context, r *Run) error {
	if err := validate(r); err != nil {
		return err
	}
	statsJSON, err := json.Marshal(r.Stats)
	if err != nil {
		return fmt.Errorf("store: encode stats: %w", err)
	}
	cliquesJSON, err := json.Marshal(r.Cliques)
	if err != nil {
		return fmt.Errorf("store: encode cliques: %w", err)
	}
	summariesJSON, err := json.Marshal(r.Summaries)
	if err != nil {
		return fmt.Errorf("store: encode summaries: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	const query = `
INSERT INTO runs (
  id, created_at_utc, source, min_size, vertex_count, edge_count,
  component_count, largest_component, search_stats, cliques, summaries
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  created_at_utc=excluded.created_at_utc,
  source=excluded.source,
  min_size=excluded.min_size,
  vertex_count=excluded.vertex_count,
  edge_count=excluded.edge_count,
  component_count=excluded.component_count,
  largest_component=excluded.largest_component,
  search_stats=excluded.search_stats,
  cliques=excluded.cliques,
  summaries=excluded.summaries
`
	err = s.withRetry("save run", func() error {
		_, err := s.db.ExecContext(ctx, query,
			r.ID,
			r.CreatedAt.UTC().Format(time.RFC3339Nano),
			r.Source,
			r.MinSize,
			r.Vertices,
			r.Edges,
			r.Components,
			r.LargestComponent,
			string(statsJSON),
			string(cliquesJSON),
			string(summariesJSON),
		)
		return err
	})
	if err != nil {
		return err
	}
	s.logger.Debug("run saved", zap.String("run_id", r.ID), zap.Int("cliques", len(r.Cliques)))

	return nil
}

const selectRun = `
SELECT id, created_at_utc, source, min_size, vertex_count, edge_count,
       component_count, largest_component, search_stats, cliques, summaries
FROM runs`

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r *Run
	err := s.withRetry("load run", func() error {
		row := s.db.QueryRowContext(ctx, selectRun+" WHERE id = ?", id)
		var err error
		r, err = scanRun(row)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

// List implements Store.
func (s *SQLiteStore) List(ctx context.Context) ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows *sql.Rows
	err := s.withRetry("list runs", func() error {
		var qErr error
		rows, qErr = s.db.QueryContext(ctx, selectRun+" ORDER BY created_at_utc DESC, id ASC")
		return qErr
	})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate runs: %w", err)
	}
	sortNewestFirst(runs)

	return runs, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var r Run
	var createdRaw, statsRaw, cliquesRaw, summariesRaw string
	if err := sc.Scan(
		&r.ID, &createdRaw, &r.Source, &r.MinSize, &r.Vertices, &r.Edges,
		&r.Components, &r.LargestComponent, &statsRaw, &cliquesRaw, &summariesRaw,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("store: scan run: %w", err)
	}

	ts, err := time.Parse(time.RFC3339Nano, createdRaw)
	if err != nil {
		return nil, fmt.Errorf("store: parse timestamp %q: %w", createdRaw, err)
	}
	r.CreatedAt = ts.UTC()
	if err := json.Unmarshal([]byte(statsRaw), &r.Stats); err != nil {
		return nil, fmt.Errorf("store: decode stats of %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(cliquesRaw), &r.Cliques); err != nil {
		return nil, fmt.Errorf("store: decode cliques of %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(summariesRaw), &r.Summaries); err != nil {
		return nil, fmt.Errorf("store: decode summaries of %s: %w", r.ID, err)
	}

	return &r, nil
}

// withRetry repeats fn while SQLite reports a lock conflict.
func (s *SQLiteStore) withRetry(op string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isLockError(err) || attempt == maxAttempts {
			break
		}
		s.logger.Warn("sqlite busy, retrying", zap.String("op", op), zap.Int("attempt", attempt))
		time.Sleep(time.Duration(attempt*25) * time.Millisecond)
	}
	if errors.Is(lastErr, sql.ErrNoRows) {
		return lastErr
	}

	return fmt.Errorf("store: %s: %w", op, lastErr)
}

func isLockError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy")
}
