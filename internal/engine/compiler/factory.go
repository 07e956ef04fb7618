package compiler

import (
	"github.com/j3din00b/modulus-sym/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"github.com/j3din00b/modulus-sym/internal/adapters/native" //nolint:depguard // Wired in engine wiring
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
)

// Factory holds the collaborators that do not depend on configuration and
// builds a Compiler once the configuration is known.
type Factory struct {
	interp ports.InterpretedBackend
	logger ports.Logger
	tracer ports.Tracer
}

// NewFactory creates a Factory.
func NewFactory(interp ports.InterpretedBackend, log ports.Logger, tracer ports.Tracer) *Factory {
	return &Factory{
		interp: interp,
		logger: log,
		tracer: tracer,
	}
}

// Build creates a Compiler with a fresh cache in the configured key mode.
// The native backend is used unless cfg disables it.
func (f *Factory) Build(cfg *domain.Config, metrics ports.Metrics) (*Compiler, error) {
	store, err := cache.NewMemory(cfg.CacheKey)
	if err != nil {
		return nil, err
	}

	var fast ports.FastBackend
	if cfg.Native {
		fast = native.New(cfg.Chunk)
	}
	backend := NewBackendCompiler(fast, f.interp, f.logger, metrics)
	return New(store, backend, f.tracer, metrics), nil
}
