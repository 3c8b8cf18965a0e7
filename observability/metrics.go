// Package observability holds the Prometheus collectors and the
// OpenTelemetry tracer of an lvclique run. lvclique is a batch tool, so
// metrics live on a private registry and are dumped to a text file at the
// end of a run instead of being scraped.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvclique/clique"
)

// Metrics bundles every collector of a run.
type Metrics struct {
	registry *prometheus.Registry

	GraphVertices   prometheus.Gauge
	GraphEdges      prometheus.Gauge
	GraphComponents prometheus.Gauge

	SearchDuration prometheus.Histogram
	SearchCalls    prometheus.Counter
	CliquesEmitted prometheus.Counter
	CliquesDropped prometheus.Counter
	SearchMaxDepth prometheus.Gauge

	StageDuration *prometheus.HistogramVec
	Runs          *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors under namespace on a
// fresh registry, so several instances can coexist in tests.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GraphVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "graph", Name: "vertices",
			Help: "Vertices in the loaded graph",
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "graph", Name: "edges",
			Help: "Undirected edges in the loaded graph",
		}),
		GraphComponents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "graph", Name: "components",
			Help: "Connected components in the loaded graph",
		}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "search", Name: "duration_seconds",
			Help:    "Wall time of the maximal clique search",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		SearchCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "search", Name: "calls_total",
			Help: "Recursive search frames expanded",
		}),
		CliquesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "search", Name: "cliques_emitted_total",
			Help: "Maximal cliques at or above the minimum size",
		}),
		CliquesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "search", Name: "cliques_below_threshold_total",
			Help: "Maximal cliques discarded by the minimum size",
		}),
		SearchMaxDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "search", Name: "max_depth",
			Help: "Deepest recursion level reached",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "stage_duration_seconds",
			Help:    "Wall time per pipeline stage",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_total",
			Help: "Pipeline runs by outcome",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		m.GraphVertices, m.GraphEdges, m.GraphComponents,
		m.SearchDuration, m.SearchCalls, m.CliquesEmitted, m.CliquesDropped, m.SearchMaxDepth,
		m.StageDuration, m.Runs,
	)

	return m
}

// Registry exposes the private registry, e.g. for a promhttp handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveSearch records one finished search.
func (m *Metrics) ObserveSearch(elapsed time.Duration, s clique.Stats) {
	m.SearchDuration.Observe(elapsed.Seconds())
	m.SearchCalls.Add(float64(s.Calls))
	m.CliquesEmitted.Add(float64(s.Emitted))
	m.CliquesDropped.Add(float64(s.BelowThreshold))
	m.SearchMaxDepth.Set(float64(s.MaxDepth))
}

// ObserveStage records the duration of a named stage.
func (m *Metrics) ObserveStage(stage string, elapsed time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// WriteTextfile dumps the registry in text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("observability: write metrics to %s: %w", path, err)
	}

	return nil
}
