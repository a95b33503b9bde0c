package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/onto/internal/adapters/telemetry"
	"go.trai.ch/onto/internal/core/ports"
	"go.trai.ch/onto/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestTracer_ReportsJobSpans(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var startedID string
	renderer.EXPECT().OnJobStart(gomock.Any(), "example.org_onto.rdf", gomock.Any()).
		DoAndReturn(func(spanID, _ string, _ time.Time) { startedID = spanID })
	renderer.EXPECT().OnJobComplete(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(spanID string, _ time.Time, _ error) { assert.Equal(t, startedID, spanID) })

	tracer := telemetry.NewOTelTracerFrom(telemetry.NewProvider(renderer), "test")

	ctx, job := tracer.Start(context.Background(), "example.org_onto.rdf", ports.AsJob())
	_, fetch := tracer.Start(ctx, "fetch")
	fetch.SetAttribute("onto.locator", "http://example.org/onto")
	fetch.SetAttribute("bytes", 12)
	fetch.SetAttribute("other", struct{}{})
	fetch.End()
	job.End()

	require.NotEmpty(t, startedID)
}

func TestTracer_ReportsFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnJobStart(gomock.Any(), "broken.ttl", gomock.Any())
	renderer.EXPECT().OnJobComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, _ time.Time, err error) {
			require.Error(t, err)
			assert.Contains(t, err.Error(), "no triples")
		})

	tracer := telemetry.NewOTelTracerFrom(telemetry.NewProvider(renderer), "test")

	_, span := tracer.Start(context.Background(), "broken.ttl", ports.AsJob())
	span.RecordError(errors.New("no triples"))
	span.End()
}

func TestTracer_EmitPlan(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().OnPlanEmit([]string{"a", "b"})

	tracer := telemetry.NewOTelTracerFrom(telemetry.NewProvider(renderer), "test").WithRenderer(renderer)
	tracer.EmitPlan(context.Background(), []string{"a", "b"})
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()
	got, span := tracer.Start(ctx, "x", ports.AsJob())
	assert.Equal(t, ctx, got)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("boom"))
	span.End()
	tracer.EmitPlan(ctx, []string{"x"})
}
