package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/j3din00b/modulus-sym/internal/adapters/interp"    //nolint:depguard // Wired in engine wiring
	"github.com/j3din00b/modulus-sym/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/j3din00b/modulus-sym/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/j3din00b/modulus-sym/internal/core/ports"
)

// NodeID is the unique identifier for the compiler factory Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			interp.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			interpreter, err := graft.Dep[ports.InterpretedBackend](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(interpreter, log, tracer), nil
		},
	})
}
