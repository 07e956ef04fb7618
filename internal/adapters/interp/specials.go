package interp

import (
	"fmt"
	"math"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	errOperandCount = zerr.New("unexpected operand count")
	errNotNumber    = zerr.New("operand is not a number")
)

func operandCount(name string, n int) error {
	return zerr.With(zerr.With(errOperandCount, "function", name), "operands", n)
}

// Tolerances of the equal function.
const (
	equalRTol = 1e-5
	equalATol = 1e-8
)

// specials are the functions only the interpreted backend implements.
var specials = map[string]func(args ...any) (any, error){
	domain.FuncAnd: func(args ...any) (any, error) {
		for _, a := range args {
			if !truth(a) {
				return false, nil
			}
		}
		return true, nil
	},
	domain.FuncOr: func(args ...any) (any, error) {
		for _, a := range args {
			if truth(a) {
				return true, nil
			}
		}
		return false, nil
	},
	domain.FuncNot: func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, operandCount("Not", len(args))
		}
		return !truth(args[0]), nil
	},
	domain.FuncXor: func(args ...any) (any, error) {
		acc := false
		for _, a := range args {
			acc = acc != truth(a)
		}
		return acc, nil
	},
	domain.FuncHeaviside: func(args ...any) (any, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, operandCount("Heaviside", len(args))
		}
		x, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return heaviside(x), nil
	},
	domain.FuncDiracDelta: func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, operandCount("DiracDelta", len(args))
		}
		x, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return diracDelta(x), nil
	},
	domain.FuncAmin: foldFloats(domain.FuncAmin, math.Min),
	domain.FuncAmax: foldFloats(domain.FuncAmax, math.Max),
	domain.FuncEqual: func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, operandCount("equal", len(args))
		}
		a, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		b, err := toFloat(args[1])
		if err != nil {
			return nil, err
		}
		return isClose(a, b), nil
	},
}

// heaviside is the unit step. The value at zero is 1; the second operand is ignored.
func heaviside(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x < 0:
		return 0
	}
	return 1
}

func diracDelta(x float64) float64 {
	if x == 0 {
		return math.Inf(1)
	}
	if math.IsNaN(x) {
		return math.NaN()
	}
	return 0
}

func isClose(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= equalATol+equalRTol*math.Abs(b)
}

func foldFloats(name string, f func(a, b float64) float64) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if len(args) == 0 {
			return nil, operandCount(name, 0)
		}
		acc, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			v, err := toFloat(a)
			if err != nil {
				return nil, err
			}
			acc = f(acc, v)
		}
		return acc, nil
	}
}

func mathFunction(fn domain.MathFunc) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if !fn.AcceptsArgs(len(args)) {
			return nil, operandCount(fn.Name, len(args))
		}
		values := make([]float64, len(args))
		for i, a := range args {
			v, err := toFloat(a)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return fn.Apply(values...), nil
	}
}

func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, zerr.With(errNotNumber, "type", fmt.Sprintf("%T", v))
}

func truth(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}
