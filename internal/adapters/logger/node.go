package logger

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})
}
