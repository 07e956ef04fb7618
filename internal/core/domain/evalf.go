package domain

import (
	"math"
	"slices"
)

// Evalf coerces a symbol-free arithmetic tree to a number.
// It reports false for anything that references a symbol, a boolean or a
// function without a numeric definition.
func Evalf(e Expr) (float64, bool) {
	switch n := e.(type) {
	case *Number:
		return n.Value(), true
	case *Sum:
		acc := 0.0
		for _, t := range n.terms {
			v, ok := Evalf(t)
			if !ok {
				return 0, false
			}
			acc += v
		}
		return acc, true
	case *Product:
		acc := 1.0
		for _, f := range n.factors {
			v, ok := Evalf(f)
			if !ok {
				return 0, false
			}
			acc *= v
		}
		return acc, true
	case *Power:
		b, ok := Evalf(n.base)
		if !ok {
			return 0, false
		}
		x, ok := Evalf(n.exp)
		if !ok {
			return 0, false
		}
		return math.Pow(b, x), true
	case *Call:
		f, ok := LookupMath(n.name)
		if !ok || !f.AcceptsArgs(len(n.args)) {
			return 0, false
		}
		vals := make([]float64, len(n.args))
		for i, a := range n.args {
			v, ok := Evalf(a)
			if !ok {
				return 0, false
			}
			vals[i] = v
		}
		return f.Apply(vals...), true
	}
	return 0, false
}

// Walk visits e and its descendants depth first, parents before children.
// Returning false from fn skips the children of the visited node.
func Walk(e Expr, fn func(Expr) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.Args() {
		Walk(child, fn)
	}
}

// FreeSymbols returns the sorted, unique names of the symbols referenced by e.
func FreeSymbols(e Expr) []string {
	seen := make(map[string]struct{})
	Walk(e, func(n Expr) bool {
		if s, ok := n.(*Symbol); ok {
			seen[s.Name()] = struct{}{}
		}
		return true
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
