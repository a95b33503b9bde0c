package ports

import (
	"context"
	"time"
)

// Renderer presents import progress. It is driven by the telemetry bridge,
// so the pipeline never talks to it directly.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// OnPlanEmit is called once before a bulk import starts.
	OnPlanEmit(locators []string)

	// OnJobStart is called when an import job begins.
	OnJobStart(spanID, name string, startTime time.Time)

	// OnJobComplete is called when an import job finishes. err is nil on success.
	OnJobComplete(spanID string, endTime time.Time, err error)
}
