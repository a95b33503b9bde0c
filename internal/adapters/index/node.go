package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/config"
	"go.trai.ch/onto/internal/adapters/logger"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

// NodeID is the unique identifier for the provenance index Graft node.
const NodeID graft.ID = "adapter.index"

func init() {
	graft.Register(graft.Node[ports.SourceIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.LayoutNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceIndex, error) {
			layout, err := graft.Dep[*domain.Layout](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(layout.IndexDir, log), nil
		},
	})
}
