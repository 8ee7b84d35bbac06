package detector

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the environment Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[Env]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Env, error) {
			return ProcessEnv(), nil
		},
	})
}
