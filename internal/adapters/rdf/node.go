package rdf

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/onto/internal/core/ports"
)

// NodeID is the unique identifier for the parser Graft node.
const NodeID graft.ID = "adapter.rdf"

func init() {
	graft.Register(graft.Node[ports.Parser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Parser, error) {
			return NewParser(), nil
		},
	})
}
