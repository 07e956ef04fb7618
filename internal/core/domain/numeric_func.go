package domain

import "strings"

// EvalFunc is a plain numeric function over named arrays.
type EvalFunc func(in Inputs) (Array, error)

// NumericFunc is an expression unit that is already a numeric function.
// It declares the input names it reads, and callers receive exactly those.
type NumericFunc struct {
	node
	name   string
	params []string
	fn     EvalFunc
}

// Func wraps fn as an expression unit reading the given parameters.
func Func(name string, params []string, fn EvalFunc) *NumericFunc {
	return &NumericFunc{
		node:   newNode(),
		name:   name,
		params: append([]string(nil), params...),
		fn:     fn,
	}
}

// Name returns the label the function was declared with.
func (f *NumericFunc) Name() string { return f.name }

// Params returns the declared parameter names in declaration order.
func (f *NumericFunc) Params() []string {
	return append([]string(nil), f.params...)
}

// Call invokes the wrapped function with in unchanged.
func (f *NumericFunc) Call(in Inputs) (Array, error) {
	return f.fn(in)
}

func (f *NumericFunc) Args() []Expr { return nil }

func (f *NumericFunc) String() string {
	return "<func " + f.name + "(" + strings.Join(f.params, ", ") + ")>"
}

func (f *NumericFunc) Subs(string, Expr) Expr { return f }
