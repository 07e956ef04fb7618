// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/j3din00b/modulus-sym/internal/adapters/config"
	_ "github.com/j3din00b/modulus-sym/internal/adapters/interp"
	_ "github.com/j3din00b/modulus-sym/internal/adapters/logger"
	_ "github.com/j3din00b/modulus-sym/internal/adapters/table"
	_ "github.com/j3din00b/modulus-sym/internal/adapters/telemetry"
	// Register engine nodes.
	_ "github.com/j3din00b/modulus-sym/internal/engine/compiler"
	// Register app nodes.
	_ "github.com/j3din00b/modulus-sym/internal/app"
)
