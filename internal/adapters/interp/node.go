package interp

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
)

// NodeID is the unique identifier for the interpreted backend Graft node.
const NodeID graft.ID = "adapter.interp"

func init() {
	graft.Register(graft.Node[ports.InterpretedBackend]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InterpretedBackend, error) {
			return New(), nil
		},
	})
}
