package ports

import "github.com/j3din00b/modulus-sym/internal/core/domain"

// CompileFunc produces an evaluator on a cache miss.
type CompileFunc func() (*domain.Evaluator, error)

// EvaluatorCache memoizes compiled evaluators per expression and canonical argument tuple.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type EvaluatorCache interface {
	// GetOrCompile returns the evaluator stored for (expr, args), running compile
	// and storing its result on a miss. Failed compiles are not stored.
	GetOrCompile(expr domain.Expr, args domain.ArgKey, compile CompileFunc) (*domain.Evaluator, error)

	// Len returns the number of stored evaluators.
	Len() int
}
