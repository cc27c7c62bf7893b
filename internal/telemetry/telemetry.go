// Package telemetry constructs an OpenTelemetry tracer provider for the
// Simulator to wrap Step and MonteCarlo in spans. The exporter writes to an
// io.Writer the caller supplies rather than a network sink, so a Simulator
// opting into tracing never opens a socket.
package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// New constructs a tracer provider over a stdouttrace exporter writing to
// w, returning both the provider (for Shutdown) and a named tracer.
func New(w io.Writer) (*sdktrace.TracerProvider, trace.Tracer, error) {
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	return tp, tp.Tracer("github.com/redgum-labs/firesim/pkg/bushfire"), nil
}

// Noop returns a tracer that produces no spans, the default for a
// Simulator constructed without WithTracer.
func Noop() trace.Tracer { return trace.NewNoopTracerProvider().Tracer("noop") }

// Shutdown flushes and stops a tracer provider, swallowing shutdown errors
// past a best-effort call — there is no request context to report them to.
func Shutdown(tp *sdktrace.TracerProvider) {
	if tp == nil {
		return
	}
	_ = tp.Shutdown(context.Background())
}
