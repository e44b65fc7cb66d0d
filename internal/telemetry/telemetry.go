// Package telemetry provides optional OTLP trace export for conversation runs.
package telemetry

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "review-scribe"

// Config holds the configuration for telemetry
type Config struct {
	Enabled      bool
	OTLPEndpoint string
}

// Provider manages the tracing pipeline. When disabled it hands out a no-op
// tracer so callers never need to branch.
type Provider struct {
	tracerProvider *sdktrace.TracerProvider // nil when disabled
	tracer         trace.Tracer
}

// NewProvider creates a new telemetry provider. When config.Enabled is false
// the provider is inert and Shutdown is a no-op.
func NewProvider(ctx context.Context, config Config, serviceVersion string) (*Provider, error) {
	if !config.Enabled {
		return &Provider{
			tracer: noop.NewTracerProvider().Tracer(serviceName),
		}, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(
		otlptracehttp.WithEndpoint(config.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	log.Printf("Telemetry enabled, exporting traces to %s", config.OTLPEndpoint)

	return &Provider{
		tracerProvider: tracerProvider,
		tracer:         tracerProvider.Tracer(serviceName),
	}, nil
}

// Tracer returns the tracer sessions should create spans with
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Shutdown flushes and shuts down the tracing pipeline
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.tracerProvider == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.tracerProvider.Shutdown(ctx)
}

// NewSessionID generates a new session UUID
func NewSessionID() string {
	return uuid.New().String()
}
