package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

var runPrefix = []byte("run/")

func runKey(id string) []byte {
	return append(append([]byte{}, runPrefix...), id...)
}

// BadgerStore keeps each run as a JSON document under run/<id>.
type BadgerStore struct {
	db     *badger.DB
	logger *zap.Logger
}

// zapBadgerLogger adapts zap to badger.Logger.
type zapBadgerLogger struct {
	s *zap.SugaredLogger
}

func (l zapBadgerLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l zapBadgerLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l zapBadgerLogger) Infof(format string, args ...interface{})    { l.s.Debugf(format, args...) }
func (l zapBadgerLogger) Debugf(format string, args ...interface{})   { l.s.Debugf(format, args...) }

// OpenBadger opens the database directory cfg.Path, or an in-memory
// instance when cfg.InMemory is set.
func OpenBadger(cfg Config, logger *zap.Logger) (*BadgerStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: badger path is required for a persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create badger directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path).WithSyncWrites(true)
	}
	opts = opts.WithNumVersionsToKeep(1).WithLogger(zapBadgerLogger{s: logger.Sugar()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}
	logger.Debug("badger store opened", zap.String("path", cfg.Path), zap.Bool("in_memory", cfg.InMemory))

	return &BadgerStore{db: db, logger: logger}, nil
}

// Save implements Store.
func (s *BadgerStore) Save(ctx context.Context, r *Run) error {
	if err := validate(r); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("store: encode run %s: %w", r.ID, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(runKey(r.ID), val)
	}); err != nil {
		return fmt.Errorf("store: save run %s: %w", r.ID, err)
	}
	s.logger.Debug("run saved", zap.String("run_id", r.ID), zap.Int("bytes", len(val)))

	return nil
}

// Load implements Store.
func (s *BadgerStore) Load(ctx context.Context, id string) (*Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var r Run
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(runKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load run %s: %w", id, err)
	}

	return &r, nil
}

// List implements Store.
func (s *BadgerStore) List(ctx context.Context) ([]Run, error) {
	runs := make([]Run, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(runPrefix); it.ValidForPrefix(runPrefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r Run
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			runs = append(runs, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	sortNewestFirst(runs)

	return runs, nil
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
