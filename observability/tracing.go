package observability

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope of lvclique spans.
const TracerName = "github.com/katalvlaran/lvclique"

// Tracing owns a tracer and its shutdown hook.
type Tracing struct {
	Tracer   trace.Tracer
	shutdown func(context.Context) error
}

// NewTracing exports spans as JSON to w when enabled; otherwise spans are
// dropped by a no-op provider. The provider is not installed globally.
func NewTracing(enabled bool, w io.Writer, version string) (*Tracing, error) {
	if !enabled {
		return &Tracing{
			Tracer:   noop.NewTracerProvider().Tracer(TracerName),
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("observability: create stdout exporter: %w", err)
	}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", "lvclique"),
		attribute.String("service.version", version),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
	)

	return &Tracing{Tracer: tp.Tracer(TracerName), shutdown: tp.Shutdown}, nil
}

// Shutdown flushes and stops the exporter.
func (t *Tracing) Shutdown(ctx context.Context) error {
	return t.shutdown(ctx)
}
