package domain_test

import (
	"math"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr_IdentityIsStable(t *testing.T) {
	x := domain.Sym("x")
	a := domain.Add(x, domain.Num(1))
	b := domain.Add(x, domain.Num(1))

	assert.Equal(t, a.ID(), a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, domain.Fingerprint(a), domain.Fingerprint(b))
}

func TestExpr_String(t *testing.T) {
	x, y := domain.Sym("x"), domain.Sym("y")

	tests := []struct {
		name string
		expr domain.Expr
		want string
	}{
		{name: "sum", expr: domain.Add(x, y), want: "(x + y)"},
		{name: "product", expr: domain.Mul(domain.Num(2), x), want: "(2*x)"},
		{name: "power", expr: domain.Pow(x, domain.Num(0.5)), want: "(x**0.5)"},
		{name: "call", expr: domain.Fn("Heaviside", x, domain.Num(5)), want: "Heaviside(x, 5)"},
		{name: "relational", expr: domain.Lt(x, y), want: "(x < y)"},
		{
			name: "piecewise",
			expr: domain.Piecewise(
				domain.Piece{Value: x, Cond: domain.Gt(x, domain.Num(0))},
				domain.Piece{Value: domain.Num(0), Cond: domain.Bool(true)},
			),
			want: "Piecewise((x, (x > 0)), (0, True))",
		},
		{name: "list", expr: domain.List(x, y), want: "[x, y]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestExpr_SubsKeepsUntouchedTrees(t *testing.T) {
	x := domain.Sym("x")
	e := domain.Mul(domain.Num(2), x)

	assert.Same(t, e, e.Subs("y", domain.Num(1)))

	got := e.Subs("x", domain.Num(3))
	assert.NotSame(t, e, got)
	v, ok := domain.Evalf(got)
	require.True(t, ok)
	assert.InDelta(t, 6.0, v, 1e-12)
}

func TestExpr_SubsResolvesRelationals(t *testing.T) {
	x := domain.Sym("x")

	gt := domain.Gt(x, domain.Num(0))
	resolved := gt.Subs("x", domain.Num(1))
	b, ok := resolved.(*domain.Boolean)
	require.True(t, ok)
	assert.True(t, b.Value())

	resolved = gt.Subs("x", domain.Num(-1))
	b, ok = resolved.(*domain.Boolean)
	require.True(t, ok)
	assert.False(t, b.Value())

	partial := domain.Lt(x, domain.Sym("y")).Subs("x", domain.Num(1))
	_, ok = partial.(*domain.Relational)
	assert.True(t, ok)
}

func TestExpr_SubsFoldsLogic(t *testing.T) {
	x, y := domain.Sym("x"), domain.Sym("y")
	e := domain.And(domain.Gt(x, domain.Num(0)), domain.Lt(y, domain.Num(0)))

	got := domain.SubsAll(e, map[string]domain.Expr{"x": domain.Num(1), "y": domain.Num(-1)})
	b, ok := got.(*domain.Boolean)
	require.True(t, ok)
	assert.True(t, b.Value())

	got = domain.Xor(domain.Bool(true), domain.Gt(x, domain.Num(0))).Subs("x", domain.Num(1))
	b, ok = got.(*domain.Boolean)
	require.True(t, ok)
	assert.False(t, b.Value())
}

func TestEvalf(t *testing.T) {
	x := domain.Sym("x")

	tests := []struct {
		name   string
		expr   domain.Expr
		want   float64
		wantOK bool
	}{
		{name: "number", expr: domain.Num(2.5), want: 2.5, wantOK: true},
		{name: "arithmetic", expr: domain.Div(domain.Add(domain.Num(1), domain.Num(2)), domain.Num(4)), want: 0.75, wantOK: true},
		{name: "function", expr: domain.Fn("sqrt", domain.Num(16)), want: 4, wantOK: true},
		{name: "variadic", expr: domain.Fn("Max", domain.Num(1), domain.Num(7), domain.Num(3)), want: 7, wantOK: true},
		{name: "symbol", expr: domain.Add(x, domain.Num(1))},
		{name: "boolean", expr: domain.Bool(true)},
		{name: "unknown function", expr: domain.Fn("Heaviside", domain.Num(1))},
		{name: "wrong arity", expr: domain.Fn("atan2", domain.Num(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.Evalf(tt.expr)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}

func TestFreeSymbols(t *testing.T) {
	x, y := domain.Sym("x"), domain.Sym("y")
	e := domain.List(domain.Mul(y, x), domain.Fn("sin", x), domain.Num(math.Pi))

	assert.Equal(t, []string{"x", "y"}, domain.FreeSymbols(e))
	assert.Empty(t, domain.FreeSymbols(domain.Num(1)))
}

func TestNumericFunc_ParamsAreCopied(t *testing.T) {
	params := []string{"u", "v"}
	f := domain.Func("uv", params, func(in domain.Inputs) (domain.Array, error) {
		return in["u"], nil
	})
	params[0] = "changed"

	got := f.Params()
	assert.Equal(t, []string{"u", "v"}, got)
	got[1] = "changed"
	assert.Equal(t, []string{"u", "v"}, f.Params())
}

func TestName_Interning(t *testing.T) {
	a := domain.NewName("x")
	b := domain.NewName("x")
	assert.Equal(t, a, b)
	assert.Equal(t, "x", a.String())
	assert.Empty(t, domain.Name{}.String())

	var n domain.Name
	require.NoError(t, n.UnmarshalText([]byte("alpha")))
	text, err := n.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(text))
}
