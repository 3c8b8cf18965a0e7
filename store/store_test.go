package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/stats"
	"github.com/katalvlaran/lvclique/store"
)

// StoreSuite runs the same contract against every backend.
type StoreSuite struct {
	suite.Suite
	cfg func(t *testing.T) store.Config
	s   store.Store
	ctx context.Context
}

func (s *StoreSuite) SetupTest() {
	var err error
	s.ctx = context.Background()
	s.s, err = store.Open(s.cfg(s.T()), zaptest.NewLogger(s.T()))
	s.Require().NoError(err)
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.s.Close())
}

func sampleRun(id string, at time.Time) *store.Run {
	return &store.Run{
		ID:               id,
		CreatedAt:        at,
		Source:           "edges.csv",
		MinSize:          3,
		Vertices:         6,
		Edges:            6,
		Components:       2,
		LargestComponent: 3,
		Stats:            clique.Stats{Calls: 9, Leaves: 2, Emitted: 2, MaxDepth: 3},
		Cliques:          []clique.Clique{{1, 2, 3}, {4, 5, 6}},
		Summaries:        []stats.Summary{{Size: 3, TotalViews: 600, Top: 3, TopShare: 0.5}},
	}
}

func (s *StoreSuite) TestSaveLoad() {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := sampleRun("a", at)
	s.Require().NoError(s.s.Save(s.ctx, want))

	got, err := s.s.Load(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *StoreSuite) TestSaveReplaces() {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := sampleRun("a", at)
	s.Require().NoError(s.s.Save(s.ctx, r))
	r.Cliques = []clique.Clique{{7, 8}}
	s.Require().NoError(s.s.Save(s.ctx, r))

	got, err := s.s.Load(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal([]clique.Clique{{7, 8}}, got.Cliques)

	runs, err := s.s.List(s.ctx)
	s.Require().NoError(err)
	s.Len(runs, 1)
}

func (s *StoreSuite) TestListNewestFirst() {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.s.Save(s.ctx, sampleRun("old", base)))
	s.Require().NoError(s.s.Save(s.ctx, sampleRun("new", base.Add(time.Hour))))
	s.Require().NoError(s.s.Save(s.ctx, sampleRun("mid", base.Add(time.Minute))))

	runs, err := s.s.List(s.ctx)
	s.Require().NoError(err)
	ids := make([]string, 0, len(runs))
	for _, r := range runs {
		ids = append(ids, r.ID)
	}
	s.Equal([]string{"new", "mid", "old"}, ids)
}

func (s *StoreSuite) TestErrors() {
	_, err := s.s.Load(s.ctx, "missing")
	s.ErrorIs(err, store.ErrNotFound)

	s.ErrorIs(s.s.Save(s.ctx, &store.Run{}), store.ErrInvalidRun)
	s.ErrorIs(s.s.Save(s.ctx, nil), store.ErrInvalidRun)
}

func (s *StoreSuite) TestEmptyList() {
	runs, err := s.s.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(runs)
}

func TestSQLiteMemory(t *testing.T) {
	suite.Run(t, &StoreSuite{cfg: func(*testing.T) store.Config {
		return store.Config{Driver: store.DriverSQLite, InMemory: true}
	}})
}

func TestSQLiteFile(t *testing.T) {
	suite.Run(t, &StoreSuite{cfg: func(t *testing.T) store.Config {
		return store.Config{Driver: store.DriverSQLite, Path: filepath.Join(t.TempDir(), "nested", "runs.db")}
	}})
}

func TestBadgerMemory(t *testing.T) {
	suite.Run(t, &StoreSuite{cfg: func(*testing.T) store.Config {
		return store.Config{Driver: store.DriverBadger, InMemory: true}
	}})
}

func TestBadgerPersists(t *testing.T) {
	dir := t.TempDir()
	cfg := store.Config{Driver: store.DriverBadger, Path: dir}
	ctx := context.Background()

	s, err := store.Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, sampleRun("keep", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, s.Close())

	s, err = store.Open(cfg, nil)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(ctx, "keep")
	require.NoError(t, err)
	require.Equal(t, "edges.csv", got.Source)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := store.Open(store.Config{Driver: "postgres"}, nil)
	require.ErrorIs(t, err, store.ErrUnknownDriver)
}

func TestNewRun(t *testing.T) {
	a := store.NewRun("x.csv", 4)
	b := store.NewRun("x.csv", 4)
	require.NotEqual(t, a.ID, b.ID)
	require.Len(t, a.ID, 36)
	require.Equal(t, 4, a.MinSize)
	require.Equal(t, time.UTC, a.CreatedAt.Location())
}
