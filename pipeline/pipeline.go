// Package pipeline runs one lvclique analysis end to end:
//
//	load edges ∥ load targets → components → clique search →
//	join → distribution + summary → charts → persist
//
// The two CSV inputs are read concurrently; everything after that is
// sequential. Every stage gets a span, a duration sample and a log line.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvclique/bfs"
	"github.com/katalvlaran/lvclique/clique"
	"github.com/katalvlaran/lvclique/config"
	"github.com/katalvlaran/lvclique/core"
	"github.com/katalvlaran/lvclique/ingest"
	"github.com/katalvlaran/lvclique/observability"
	"github.com/katalvlaran/lvclique/render"
	"github.com/katalvlaran/lvclique/stats"
	"github.com/katalvlaran/lvclique/store"
)

// ErrNoEdges is returned when no edge list is configured.
var ErrNoEdges = errors.New("pipeline: no edge list configured")

// Pipeline holds the collaborators of a run.
type Pipeline struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
	store   store.Store
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the metric collectors; the default is a private set.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithTracer sets the tracer; the default drops spans.
func WithTracer(t trace.Tracer) Option {
	return func(p *Pipeline) {
		if t != nil {
			p.tracer = t
		}
	}
}

// WithStore persists every successful run to s.
func WithStore(s store.Store) Option {
	return func(p *Pipeline) { p.store = s }
}

// New builds a Pipeline for cfg.
func New(cfg config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:     cfg,
		logger:  zap.NewNop(),
		metrics: observability.NewMetrics("lvclique"),
		tracer:  noop.NewTracerProvider().Tracer(observability.TracerName),
	}
	for _, fn := range opts {
		fn(p)
	}

	return p
}

// Report is the outcome of Run.
type Report struct {
	Run           *store.Run
	Distributions []stats.Distribution
	Charts        []string
}

// Run executes every stage. Targets, charts and persistence are skipped
// when not configured.
func (p *Pipeline) Run(ctx context.Context) (rep *Report, err error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.run")
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		p.metrics.Runs.WithLabelValues(status).Inc()
		span.End()
	}()

	in := p.cfg.Input
	if in.Edges == "" {
		return nil, ErrNoEdges
	}
	run := store.NewRun(in.Edges, p.cfg.Search.MinSize)
	log := p.logger.With(zap.String("run_id", run.ID))
	log.Info("run started", zap.String("edges", in.Edges), zap.String("targets", in.Targets),
		zap.Int("min_size", p.cfg.Search.MinSize))

	// 1. Load both inputs concurrently
	var (
		g       *core.Graph
		targets map[core.VertexID]ingest.NodeStats
	)
	err = p.stage(ctx, log, "load", func(ctx context.Context) error {
		// a failing loader cancels its sibling through gctx
		eg, gctx := errgroup.WithContext(ctx)
		comma := ingest.WithComma(in.CommaRune())
		eg.Go(func() error {
			var err error
			g, err = ingest.LoadEdges(in.Edges, ingest.WithHeader(in.Header), comma, ingest.WithContext(gctx))
			return err
		})
		if in.Targets != "" {
			eg.Go(func() error {
				var err error
				targets, err = ingest.LoadTargets(in.Targets, comma, ingest.WithContext(gctx))
				return err
			})
		}
		return eg.Wait()
	})
	if err != nil {
		return nil, err
	}
	run.Vertices, run.Edges = g.VertexCount(), g.EdgeCount()
	p.metrics.GraphVertices.Set(float64(run.Vertices))
	p.metrics.GraphEdges.Set(float64(run.Edges))
	log.Info("graph loaded", zap.Int("vertices", run.Vertices), zap.Int("edges", run.Edges),
		zap.Int("targets", len(targets)))

	// 2. Connected components
	err = p.stage(ctx, log, "components", func(ctx context.Context) error {
		comps, err := bfs.Components(ctx, g)
		if err != nil {
			return err
		}
		run.Components, run.LargestComponent = len(comps), bfs.Largest(comps)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.metrics.GraphComponents.Set(float64(run.Components))

	// 3. Clique search
	var res *clique.Result
	err = p.stage(ctx, log, "search", func(ctx context.Context) error {
		if s := p.cfg.Search.TimeoutSeconds; s > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(s)*time.Second)
			defer cancel()
		}
		opts := []clique.Option{clique.WithContext(ctx), clique.WithMinSize(p.cfg.Search.MinSize)}
		if p.cfg.Search.DegeneracyOrder {
			opts = append(opts, clique.WithDegeneracyOrder())
		}
		start := time.Now()
		var err error
		res, err = clique.BronKerbosch(g, opts...)
		if res != nil {
			p.metrics.ObserveSearch(time.Since(start), res.Stats)
		}
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.Int("vertices", run.Vertices),
			attribute.Int("min_size", p.cfg.Search.MinSize),
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	run.Stats, run.Cliques = res.Stats, res.Cliques
	log.Info("search finished", zap.Int("cliques", len(res.Cliques)),
		zap.Int("below_threshold", res.Stats.BelowThreshold), zap.Int("calls", res.Stats.Calls),
		zap.Int("max_depth", res.Stats.MaxDepth))

	rep = &Report{Run: run}

	// 4. Attribute analysis
	if targets != nil {
		err = p.stage(ctx, log, "analyze", func(context.Context) error {
			nodes, err := stats.Join(res.Cliques, targets)
			if err != nil {
				return err
			}
			rep.Distributions = stats.ViewershipDistribution(nodes)
			run.Summaries = stats.Summarize(nodes)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// 5. Charts
	if ch := p.cfg.Charts; ch.Enabled && len(rep.Distributions) > 0 {
		err = p.stage(ctx, log, "render", func(context.Context) error {
			var err error
			rep.Charts, err = render.Charts(rep.Distributions,
				render.WithDir(ch.Dir), render.WithPrefix(ch.Prefix),
				render.WithPerPage(ch.PerPage), render.WithSize(ch.Width, ch.Height))
			return err
		})
		if err != nil {
			return nil, err
		}
		log.Info("charts written", zap.Strings("files", rep.Charts))
	}

	// 6. Persist
	if p.store != nil {
		err = p.stage(ctx, log, "persist", func(ctx context.Context) error {
			return p.store.Save(ctx, run)
		})
		if err != nil {
			return nil, err
		}
	}

	log.Info("run finished")

	return rep, nil
}

// stage runs fn inside a span, records its duration and logs failures.
func (p *Pipeline) stage(ctx context.Context, log *zap.Logger, name string, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, "pipeline."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	p.metrics.ObserveStage(name, elapsed)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("stage failed", zap.String("stage", name), zap.Duration("elapsed", elapsed), zap.Error(err))
		return fmt.Errorf("pipeline: %s: %w", name, err)
	}
	log.Debug("stage done", zap.String("stage", name), zap.Duration("elapsed", elapsed))

	return nil
}
