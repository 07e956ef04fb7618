package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer spans are created with.
const InstrumentationName = "lambdify"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
