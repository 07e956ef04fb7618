package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/j3din00b/modulus-sym/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/j3din00b/modulus-sym/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/j3din00b/modulus-sym/internal/adapters/table"  //nolint:depguard // Wired in app layer
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"github.com/j3din00b/modulus-sym/internal/engine/compiler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			compiler.NodeID,
			table.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	compilers, err := graft.Dep[*compiler.Factory](ctx)
	if err != nil {
		return nil, err
	}

	codec, err := graft.Dep[ports.Table](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, compilers, codec), nil
}
