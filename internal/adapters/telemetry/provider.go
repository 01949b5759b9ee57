package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the process-wide tracer provider the span sink records into.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider installs a tracer provider for the given service name and
// returns a handle for shutting it down.
func NewProvider(serviceName string) *Provider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// RegisterSpanProcessor attaches a span processor, typically an exporter
// bridge, to the provider.
func (p *Provider) RegisterSpanProcessor(sp sdktrace.SpanProcessor) {
	p.tp.RegisterSpanProcessor(sp)
}

// Shutdown flushes and stops the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
