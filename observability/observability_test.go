package observability_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/observability"
)

func TestMetrics_ObserveSearch(t *testing.T) {
	m := observability.NewMetrics("lvclique")
	m.ObserveSearch(20*time.Millisecond, clique.Stats{Calls: 40, Leaves: 7, Emitted: 5, BelowThreshold: 2, MaxDepth: 6})
	m.ObserveSearch(time.Millisecond, clique.Stats{Calls: 2, Emitted: 1, MaxDepth: 1})

	assert.Equal(t, 42.0, testutil.ToFloat64(m.SearchCalls))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.CliquesEmitted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CliquesDropped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchMaxDepth))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchDuration), "one unlabelled series")

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "lvclique_search_duration_seconds" {
			require.Len(t, mf.GetMetric(), 1)
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), samples, "both searches observed")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := observability.NewMetrics("lvclique")
	b := observability.NewMetrics("lvclique")
	a.Runs.WithLabelValues("ok").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Runs.WithLabelValues("ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Runs.WithLabelValues("ok")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := observability.NewMetrics("lvclique")
	m.GraphVertices.Set(7115)
	m.ObserveStage("search", time.Second)

	path := filepath.Join(t.TempDir(), "lvclique.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lvclique_graph_vertices 7115")
	assert.Contains(t, string(data), `lvclique_stage_duration_seconds_count{stage="search"} 1`)

	assert.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}

func TestTracing_Stdout(t *testing.T) {
	var buf bytes.Buffer
	tr, err := observability.NewTracing(true, &buf, "test")
	require.NoError(t, err)

	_, span := tr.Tracer.Start(context.Background(), "search")
	span.End()
	require.NoError(t, tr.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name": "search"`)
}

func TestTracing_Disabled(t *testing.T) {
	tr, err := observability.NewTracing(false, nil, "test")
	require.NoError(t, err)

	_, span := tr.Tracer.Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, tr.Shutdown(context.Background()))
}
