// Package compiler turns expression trees into numeric evaluators. Symbolic
// units go through the native backend first and fall back to the interpreted
// one; compiled units are memoized in an injected cache.
package compiler

import "github.com/j3din00b/modulus-sym/internal/core/domain"

// Classification is the compilation strategy chosen for one expression unit.
type Classification struct {
	Kind domain.Kind
	// Value is the constant of a KindNumeric unit.
	Value float64
	// Truth is the constant of a KindBoolean unit.
	Truth bool
	// Func is the callable of a KindFunction unit.
	Func *domain.NumericFunc
}

// Params returns the declared parameters of a KindFunction unit.
func (c Classification) Params() []string {
	if c.Func == nil {
		return nil
	}
	return c.Func.Params()
}

// Classify picks the strategy for e. Numeric functions are used as they are,
// symbol-free arithmetic collapses to a number, boolean literals stay booleans
// and everything else is compiled.
func Classify(e domain.Expr) Classification {
	switch v := e.(type) {
	case *domain.NumericFunc:
		return Classification{Kind: domain.KindFunction, Func: v}
	case *domain.Boolean:
		return Classification{Kind: domain.KindBoolean, Truth: v.Value()}
	}
	if c, ok := domain.Evalf(e); ok {
		return Classification{Kind: domain.KindNumeric, Value: c}
	}
	return Classification{Kind: domain.KindSymbolic}
}

// Evaluator builds the evaluator for a non-symbolic classification.
// Symbolic units have no direct evaluator and return nil.
func (c Classification) Evaluator() *domain.Evaluator {
	switch c.Kind {
	case domain.KindFunction:
		return domain.NewEvaluator(domain.KindFunction, domain.BackendFunction, callFunc(c.Func))
	case domain.KindNumeric:
		return domain.NewEvaluator(domain.KindNumeric, domain.BackendConstant, fillNumber(c.Value))
	case domain.KindBoolean:
		return domain.NewEvaluator(domain.KindBoolean, domain.BackendConstant, fillBool(c.Truth))
	}
	return nil
}

// callFunc passes exactly the declared parameters to f.
func callFunc(f *domain.NumericFunc) domain.EvalFunc {
	params := f.Params()
	return func(in domain.Inputs) (domain.Array, error) {
		only, err := in.Only(params)
		if err != nil {
			return domain.Array{}, err
		}
		return f.Call(only)
	}
}

// fillNumber returns v in the shape of the reference input.
func fillNumber(v float64) domain.EvalFunc {
	return func(in domain.Inputs) (domain.Array, error) {
		ref, err := in.First()
		if err != nil {
			return domain.Array{}, err
		}
		return domain.Full(ref.Shape(), v), nil
	}
}

func fillBool(v bool) domain.EvalFunc {
	return func(in domain.Inputs) (domain.Array, error) {
		ref, err := in.First()
		if err != nil {
			return domain.Array{}, err
		}
		return domain.FullBool(ref.Shape(), v), nil
	}
}
