package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/adapters/cas"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/adapters/index" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/onto/internal/core/ports"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, index.NodeID},
		Run: func(ctx context.Context) (*Catalog, error) {
			cache, err := graft.Dep[ports.GraphCache](ctx)
			if err != nil {
				return nil, err
			}
			idx, err := graft.Dep[ports.SourceIndex](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, idx), nil
		},
	})
}
