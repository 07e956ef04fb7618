package domain

import "math"

// Names of the functions with special meaning to the compiler.
const (
	FuncAnd        = "And"
	FuncOr         = "Or"
	FuncNot        = "Not"
	FuncXor        = "Xor"
	FuncHeaviside  = "Heaviside"
	FuncDiracDelta = "DiracDelta"
	FuncAmin       = "amin"
	FuncAmax       = "amax"
	FuncEqual      = "equal"
)

// Variadic marks a MathFunc that accepts one or more operands.
const Variadic = -1

// MathFunc is an elementwise numeric function shared by every backend.
type MathFunc struct {
	Name  string
	Arity int
	Apply func(args ...float64) float64
}

func unary(f func(float64) float64) func(args ...float64) float64 {
	return func(args ...float64) float64 { return f(args[0]) }
}

func binary(f func(float64, float64) float64) func(args ...float64) float64 {
	return func(args ...float64) float64 { return f(args[0], args[1]) }
}

func fold(f func(float64, float64) float64) func(args ...float64) float64 {
	return func(args ...float64) float64 {
		acc := args[0]
		for _, v := range args[1:] {
			acc = f(acc, v)
		}
		return acc
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x == 0:
		return 0
	}
	return math.NaN()
}

var mathFuncs = map[string]MathFunc{
	"sin":     {Arity: 1, Apply: unary(math.Sin)},
	"cos":     {Arity: 1, Apply: unary(math.Cos)},
	"tan":     {Arity: 1, Apply: unary(math.Tan)},
	"asin":    {Arity: 1, Apply: unary(math.Asin)},
	"acos":    {Arity: 1, Apply: unary(math.Acos)},
	"atan":    {Arity: 1, Apply: unary(math.Atan)},
	"atan2":   {Arity: 2, Apply: binary(math.Atan2)},
	"sinh":    {Arity: 1, Apply: unary(math.Sinh)},
	"cosh":    {Arity: 1, Apply: unary(math.Cosh)},
	"tanh":    {Arity: 1, Apply: unary(math.Tanh)},
	"asinh":   {Arity: 1, Apply: unary(math.Asinh)},
	"acosh":   {Arity: 1, Apply: unary(math.Acosh)},
	"atanh":   {Arity: 1, Apply: unary(math.Atanh)},
	"exp":     {Arity: 1, Apply: unary(math.Exp)},
	"log":     {Arity: 1, Apply: unary(math.Log)},
	"sqrt":    {Arity: 1, Apply: unary(math.Sqrt)},
	"abs":     {Arity: 1, Apply: unary(math.Abs)},
	"sign":    {Arity: 1, Apply: unary(sign)},
	"floor":   {Arity: 1, Apply: unary(math.Floor)},
	"ceiling": {Arity: 1, Apply: unary(math.Ceil)},
	"Min":     {Arity: Variadic, Apply: fold(math.Min)},
	"Max":     {Arity: Variadic, Apply: fold(math.Max)},
}

func init() {
	for name, f := range mathFuncs {
		f.Name = name
		mathFuncs[name] = f
	}
}

// LookupMath returns the elementwise function registered under name.
func LookupMath(name string) (MathFunc, bool) {
	f, ok := mathFuncs[name]
	return f, ok
}

// MathFuncs returns every registered elementwise function.
func MathFuncs() []MathFunc {
	out := make([]MathFunc, 0, len(mathFuncs))
	for _, f := range mathFuncs {
		out = append(out, f)
	}
	return out
}

// AcceptsArgs reports whether n operands are valid for the function.
func (f MathFunc) AcceptsArgs(n int) bool {
	if f.Arity == Variadic {
		return n >= 1
	}
	return n == f.Arity
}

// foldLogic evaluates a logical call whose operands are all resolved booleans.
func foldLogic(name string, args []Expr) (bool, bool) {
	switch name {
	case FuncAnd, FuncOr, FuncNot, FuncXor:
	default:
		return false, false
	}
	if len(args) == 0 {
		return false, false
	}
	values := make([]bool, len(args))
	for i, a := range args {
		b, ok := a.(*Boolean)
		if !ok {
			return false, false
		}
		values[i] = b.Value()
	}
	switch name {
	case FuncNot:
		return !values[0], len(values) == 1
	case FuncAnd:
		for _, v := range values {
			if !v {
				return false, true
			}
		}
		return true, true
	case FuncOr:
		for _, v := range values {
			if v {
				return true, true
			}
		}
		return false, true
	}
	acc := false
	for _, v := range values {
		acc = acc != v
	}
	return acc, true
}
