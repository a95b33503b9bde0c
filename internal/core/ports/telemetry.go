package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals that a set of locators is queued for import.
	EmitPlan(ctx context.Context, locators []string)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Job marks the span as a top-level import job. Renderers only report job spans.
	Job bool
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// AsJob marks the span as a top-level import job.
func AsJob() SpanOption {
	return func(c *SpanConfig) {
		c.Job = true
	}
}
