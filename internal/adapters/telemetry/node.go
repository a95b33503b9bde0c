package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/detector"
	"go.trai.ch/onto/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracerFrom(NewProvider(renderer), "onto").WithRenderer(renderer), nil
		},
	})
}
