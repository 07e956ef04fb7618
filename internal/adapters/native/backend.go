// Package native implements the fast backend: expression trees are lowered into
// a register program with common subexpressions shared, then run column-wise.
package native

import (
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/klauspost/cpuid/v2"
)

// Backend implements ports.FastBackend.
type Backend struct {
	chunk int
}

// New creates a backend that evaluates chunk rows per task.
// A chunk of zero or less is derived from the CPU vector width.
func New(chunk int) *Backend {
	if chunk <= 0 {
		chunk = DefaultChunk()
	}
	return &Backend{chunk: chunk}
}

// DefaultChunk returns the number of rows per task for the host CPU.
func DefaultChunk() int {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F):
		return 4096
	case cpuid.CPU.Supports(cpuid.AVX2):
		return 2048
	}
	return 1024
}

// Chunk returns the number of rows evaluated per task.
func (b *Backend) Chunk() int {
	return b.chunk
}

// TryCompile lowers expr over the sorted argument list. Anything the backend
// cannot lower is reported as the result's reason.
func (b *Backend) TryCompile(expr domain.Expr, args []string) domain.FastResult {
	prog, err := lower(expr, args)
	if err != nil {
		return domain.FastFailed(err)
	}
	return domain.FastOK(&kernel{prog: prog, arity: len(args), chunk: b.chunk})
}
