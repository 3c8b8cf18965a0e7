package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvclique/config"
	"github.com/katalvlaran/lvclique/observability"
	"github.com/katalvlaran/lvclique/pipeline"
)

type runFlags struct {
	edges, targets string
	minSize        int
	degeneracy     bool
	noCharts       bool
	noStore        bool
	chartsDir      string
	metricsOut     string
	trace          bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Enumerate maximal cliques and analyse their members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := f.apply(cmd, cfg); err != nil {
				return err
			}
			return execRun(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.edges, "edges", "", "edge list CSV")
	fl.StringVar(&f.targets, "targets", "", "target attribute CSV (optional)")
	fl.IntVarP(&f.minSize, "min-size", "k", 0, "report maximal cliques with at least k vertices")
	fl.BoolVar(&f.degeneracy, "degeneracy", false, "iterate the outer level in degeneracy order")
	fl.BoolVar(&f.noCharts, "no-charts", false, "skip chart rendering")
	fl.BoolVar(&f.noStore, "no-store", false, "do not persist the run")
	fl.StringVar(&f.chartsDir, "charts-dir", "", "chart output directory")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	fl.BoolVar(&f.trace, "trace", false, "print OpenTelemetry spans to stderr")

	return cmd
}

// apply overlays explicitly set flags on cfg.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("edges") {
		cfg.Input.Edges = f.edges
	}
	if fl.Changed("targets") {
		cfg.Input.Targets = f.targets
	}
	if fl.Changed("min-size") {
		cfg.Search.MinSize = f.minSize
	}
	if fl.Changed("degeneracy") {
		cfg.Search.DegeneracyOrder = f.degeneracy
	}
	if f.noCharts {
		cfg.Charts.Enabled = false
	}
	if fl.Changed("charts-dir") {
		cfg.Charts.Dir = f.chartsDir
	}
	if f.noStore {
		cfg.Store.Enabled = false
	}
	if fl.Changed("metrics-out") {
		cfg.Metrics.TextfilePath = f.metricsOut
	}
	if f.trace {
		cfg.Tracing.Enabled = true
	}

	return cfg.Validate()
}

func execRun(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tracing, err := observability.NewTracing(cfg.Tracing.Enabled, stderr, version)
	if err != nil {
		return err
	}
	defer func() {
		if serr := tracing.Shutdown(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}()

	metrics := observability.NewMetrics("lvclique")
	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(metrics),
		pipeline.WithTracer(tracing.Tracer),
	}
	if cfg.Store.Enabled {
		st, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, pipeline.WithStore(st))
	}

	rep, runErr := pipeline.New(*cfg, opts...).Run(ctx)
	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logger.Warn("metrics dump failed", zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	return printReport(stdout, rep)
}

func printReport(w io.Writer, rep *pipeline.Report) error {
	r := rep.Run
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run\t%s\n", r.ID)
	fmt.Fprintf(tw, "graph\t%d vertices, %d edges, %d components (largest %d)\n",
		r.Vertices, r.Edges, r.Components, r.LargestComponent)
	fmt.Fprintf(tw, "cliques\t%d with size >= %d (%d smaller dropped)\n",
		len(r.Cliques), r.MinSize, r.Stats.BelowThreshold)
	for _, c := range rep.Charts {
		fmt.Fprintf(tw, "chart\t%s\n", c)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for i, c := range r.Cliques {
		line := fmt.Sprintf("%4d  %v", i+1, c)
		if i < len(r.Summaries) {
			s := r.Summaries[i]
			line += fmt.Sprintf("  views=%d mature=%d partner=%d top=%d (%.1f%%)",
				s.TotalViews, s.Mature, s.Partner, s.Top, 100*s.TopShare)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
