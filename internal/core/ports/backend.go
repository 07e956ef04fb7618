package ports

import "github.com/j3din00b/modulus-sym/internal/core/domain"

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// FastBackend lowers expressions into native vector kernels.
type FastBackend interface {
	// TryCompile builds a kernel over args, which are sorted and unique.
	// Expressions it cannot lower are reported through FastResult.Reason.
	TryCompile(expr domain.Expr, args []string) domain.FastResult
}

// InterpretedBackend evaluates expressions element by element.
type InterpretedBackend interface {
	// Compile builds an evaluator over args in the order given.
	Compile(expr domain.Expr, args []string) (*domain.Evaluator, error)
}
