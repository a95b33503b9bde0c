package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/onto/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to forward job spans to a Renderer.
// Child spans such as fetch and parse are not reported.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// NewProvider returns a tracer provider that reports job spans to renderer.
func NewProvider(renderer ports.Renderer) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil || !isJob(s.Attributes()) {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.renderer.OnJobStart(sc.SpanID().String(), s.Name(), s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil || !isJob(s.Attributes()) {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	var err error
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "import failed"
		}
		err = errors.New(desc)
	}

	b.renderer.OnJobComplete(sc.SpanID().String(), s.EndTime(), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func isJob(attrs []attribute.KeyValue) bool {
	for _, kv := range attrs {
		if kv.Key == JobAttribute {
			return kv.Value.AsBool()
		}
	}
	return false
}
