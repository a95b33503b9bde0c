package lov

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/fetch"
	"go.trai.ch/onto/internal/adapters/logger"
	"go.trai.ch/onto/internal/core/ports"
)

// NodeID is the unique identifier for the vocabulary directory Graft node.
const NodeID graft.ID = "adapter.lov"

func init() {
	graft.Register(graft.Node[ports.VocabularyDirectory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fetch.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.VocabularyDirectory, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(fetcher, log), nil
		},
	})
}
