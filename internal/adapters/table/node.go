package table

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
)

// NodeID is the unique identifier for the table codec Graft node.
const NodeID graft.ID = "adapter.table"

func init() {
	graft.Register(graft.Node[ports.Table]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Table, error) {
			return New(), nil
		},
	})
}
