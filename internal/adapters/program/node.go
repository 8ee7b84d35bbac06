package program

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/slicer/internal/core/ports"
)

// NodeID is the unique identifier for the program loader Graft node.
const NodeID graft.ID = "adapter.program_loader"

func init() {
	graft.Register(graft.Node[ports.ProgramLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgramLoader, error) {
			return NewLoader(), nil
		},
	})
}
