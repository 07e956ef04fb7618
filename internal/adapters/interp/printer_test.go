package interp_test

import (
	"math"
	"testing"

	"github.com/j3din00b/modulus-sym/internal/adapters/interp"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	x, y := domain.Sym("x"), domain.Sym("y")

	tests := []struct {
		name string
		expr domain.Expr
		want string
	}{
		{name: "aliases follow argument order", expr: domain.Add(x, y), want: "(v1 + v0)"},
		{name: "floats", expr: domain.Mul(domain.Num(2), x), want: "(2.0 * v1)"},
		{name: "negative numbers", expr: domain.Add(x, domain.Num(-0.5)), want: "(v1 + (-0.5))"},
		{name: "power", expr: domain.Pow(y, domain.Num(2)), want: "(v0 ** 2.0)"},
		{name: "non-finite", expr: domain.List(domain.Num(math.NaN()), domain.Num(math.Inf(-1))), want: "[nan(), (-inf())]"},
		{name: "functions", expr: domain.Fn("sin", x), want: "fn_sin(v1)"},
		{name: "relational", expr: domain.Ge(x, y), want: "(v1 >= v0)"},
		{
			name: "piecewise",
			expr: domain.Piecewise(
				domain.Piece{Value: x, Cond: domain.Gt(x, domain.Num(0))},
				domain.Piece{Value: domain.Num(0), Cond: domain.Bool(true)},
			),
			want: "(truth((v1 > 0.0)) ? v1 : (truth(true) ? 0.0 : nan()))",
		},
		{name: "empty sum", expr: domain.Add(), want: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.Print(tt.expr, []string{"y", "x"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrint_Failures(t *testing.T) {
	x := domain.Sym("x")

	tests := []struct {
		name string
		expr domain.Expr
	}{
		{name: "unknown function", expr: domain.Fn("besselj", x)},
		{name: "wrong arity", expr: domain.Fn("sin", x, x)},
		{name: "nested list", expr: domain.List(domain.List(x))},
		{name: "numeric function", expr: domain.Add(x, domain.Func("f", nil, nil))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interp.Print(tt.expr, []string{"x"})
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInterpretedCompileFailed.Error())
		})
	}
}
