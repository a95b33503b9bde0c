package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config store Graft node.
	NodeID graft.ID = "adapter.config_store"
	// LayoutNodeID is the unique identifier for the layout Graft node.
	LayoutNodeID graft.ID = "adapter.layout"
)

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigStore, error) {
			return NewFileStore(), nil
		},
	})

	graft.Register(graft.Node[*domain.Layout]{
		ID:        LayoutNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Layout, error) {
			home, err := domain.DefaultHome()
			if err != nil {
				return nil, domain.Fail(domain.ErrRepositoryCreateFailed, err, "resolve home directory")
			}
			return domain.NewLayout(home), nil
		},
	})
}
