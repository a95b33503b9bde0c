package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/config"
	"go.trai.ch/onto/internal/adapters/logger"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

const (
	// RepositoryNodeID is the unique identifier for the bootstrap Graft node.
	RepositoryNodeID graft.ID = "adapter.fs.repository"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Repository]{
		ID:        RepositoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.LayoutNodeID, config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Repository, error) {
			layout, err := graft.Dep[*domain.Layout](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBootstrapper(layout, store, log), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
