package identity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slicer/internal/core/ports"
)

// NodeID is the unique identifier for the identity strategy Graft node.
const NodeID graft.ID = "adapter.identity"

func init() {
	graft.Register(graft.Node[ports.IdentityStrategy]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IdentityStrategy, error) {
			return NewLocationStrategy(), nil
		},
	})
}
