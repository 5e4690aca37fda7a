// Package telemetry wires OpenTelemetry tracing for outbound API calls.
//
// Tracing is off unless an OTLP endpoint is configured; in that case spans are
// batched to the endpoint over HTTP.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "accredash/api"

// Provider owns the tracer used by the API client.
type Provider struct {
	sdk    *sdktrace.TracerProvider // nil when disabled
	tracer oteltrace.Tracer
}

// NewProvider creates an OTLP-backed provider when endpoint is non-empty and a
// no-op provider otherwise.
func NewProvider(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return Disabled(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "accredash"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{sdk: tp, tracer: tp.Tracer(instrumentationName)}, nil
}

// NewWithTracerProvider wraps an existing SDK provider. Tests use it with an
// in-memory span recorder.
func NewWithTracerProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{sdk: tp, tracer: tp.Tracer(instrumentationName)}
}

// Disabled returns a provider whose spans are dropped.
func Disabled() *Provider {
	return &Provider{tracer: noop.NewTracerProvider().Tracer(instrumentationName)}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.sdk != nil
}

// StartRequest opens a client span for one API request.
func (p *Provider) StartRequest(ctx context.Context, method, path string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	if p == nil {
		p = Disabled()
	}
	attrs = append(attrs,
		attribute.String("http.method", method),
		attribute.String("accredash.api.path", path),
	)
	return p.tracer.Start(ctx, "api "+method+" "+path,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attrs...),
	)
}

// EndRequest records the outcome of a request span and ends it.
func EndRequest(span oteltrace.Span, status int, err error) {
	if status > 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// OrgID tags a span with the organization it concerns.
func OrgID(id string) attribute.KeyValue {
	return attribute.String("accredash.org.id", id)
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}
	return p.sdk.Shutdown(ctx)
}
