package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/config"
	"go.trai.ch/onto/internal/adapters/logger"
	"go.trai.ch/onto/internal/adapters/metrics"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

// NodeID is the unique identifier for the graph cache Graft node.
const NodeID graft.ID = "adapter.graph_cache"

func init() {
	graft.Register(graft.Node[ports.GraphCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.LayoutNodeID, logger.NodeID, metrics.NodeID},
		Run: func(ctx context.Context) (ports.GraphCache, error) {
			layout, err := graft.Dep[*domain.Layout](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			m, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(layout.CacheDir, DefaultMemoryEntries, log, WithMetrics(m))
		},
	})
}
