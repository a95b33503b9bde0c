// Package telemetry adapts OpenTelemetry to the tracer port and forwards
// import job spans to a renderer.
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/onto/internal/core/ports"
)

// JobAttribute marks spans started with ports.AsJob.
const JobAttribute = "onto.job"

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer trace.Tracer

	mu       sync.RWMutex
	renderer ports.Renderer
}

// NewOTelTracer creates a new OTelTracer on the global provider.
func NewOTelTracer(name string) *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(name)}
}

// NewOTelTracerFrom creates a new OTelTracer on tp.
func NewOTelTracerFrom(tp trace.TracerProvider, name string) *OTelTracer {
	return &OTelTracer{tracer: tp.Tracer(name)}
}

// WithRenderer sets the renderer that receives the import plan.
func (t *OTelTracer) WithRenderer(r ports.Renderer) *OTelTracer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer = r
	return t
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var startOpts []trace.SpanStartOption
	if cfg.Job {
		startOpts = append(startOpts, trace.WithAttributes(attribute.Bool(JobAttribute, true)))
	}

	ctx, span := t.tracer.Start(ctx, name, startOpts...)
	return ctx, &OTelSpan{span: span}
}

// EmitPlan records the queued locators on the current span and hands them to
// the renderer.
func (t *OTelTracer) EmitPlan(ctx context.Context, locators []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("locators", locators),
		))
	}

	t.mu.RLock()
	r := t.renderer
	t.mu.RUnlock()

	if r != nil {
		r.OnPlanEmit(locators)
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}
