package interp

import (
	"math"
	"strconv"
	"strings"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
)

// funcPrefix keeps expression function names clear of expr-lang builtins.
const funcPrefix = "fn_"

// printer renders a domain tree as expr-lang source. Argument names are
// replaced by positional aliases since they need not be valid identifiers.
type printer struct {
	aliases   map[string]string
	undefined []string
}

func newPrinter(args []string) *printer {
	aliases := make(map[string]string, len(args))
	for _, a := range args {
		if _, ok := aliases[a]; !ok {
			aliases[a] = "v" + strconv.Itoa(len(aliases))
		}
	}
	return &printer{aliases: aliases}
}

// program prints a top-level expression. A list prints as an array literal.
func (p *printer) program(e domain.Expr) (string, error) {
	if t, ok := e.(*domain.Tuple); ok {
		items, err := p.all(t.Args())
		if err != nil {
			return "", err
		}
		return "[" + strings.Join(items, ", ") + "]", nil
	}
	return p.print(e)
}

//nolint:cyclop // one case per expression type
func (p *printer) print(e domain.Expr) (string, error) {
	switch e := e.(type) {
	case *domain.Number:
		return formatFloat(e.Value()), nil
	case *domain.Boolean:
		return strconv.FormatBool(e.Value()), nil
	case *domain.Symbol:
		alias, ok := p.aliases[e.Name()]
		if !ok {
			p.undefined = append(p.undefined, e.Name())
			return "nan()", nil
		}
		return alias, nil
	case *domain.Sum:
		return p.join(e.Args(), " + ", "0.0")
	case *domain.Product:
		return p.join(e.Args(), " * ", "1.0")
	case *domain.Power:
		base, err := p.print(e.Base())
		if err != nil {
			return "", err
		}
		exp, err := p.print(e.Exp())
		if err != nil {
			return "", err
		}
		return "(" + base + " ** " + exp + ")", nil
	case *domain.Relational:
		lhs, err := p.print(e.LHS())
		if err != nil {
			return "", err
		}
		rhs, err := p.print(e.RHS())
		if err != nil {
			return "", err
		}
		return "(" + lhs + " " + string(e.Op()) + " " + rhs + ")", nil
	case *domain.Call:
		return p.call(e)
	case *domain.Conditional:
		return p.piecewise(e.Pieces())
	case *domain.Tuple:
		return "", zerr.With(domain.ErrInterpretedCompileFailed, "construct", "nested list")
	case *domain.NumericFunc:
		return "", zerr.With(domain.ErrInterpretedCompileFailed, "construct", e.String())
	}
	return "", zerr.With(domain.ErrInterpretedCompileFailed, "construct", e.String())
}

func (p *printer) call(c *domain.Call) (string, error) {
	name := c.Name()
	if _, ok := specials[name]; !ok {
		fn, ok := domain.LookupMath(name)
		if !ok {
			return "", zerr.With(domain.ErrInterpretedCompileFailed, "function", name)
		}
		if !fn.AcceptsArgs(len(c.Args())) {
			err := zerr.With(domain.ErrInterpretedCompileFailed, "function", name)
			return "", zerr.With(err, "operands", len(c.Args()))
		}
	}
	args, err := p.all(c.Args())
	if err != nil {
		return "", err
	}
	return funcPrefix + name + "(" + strings.Join(args, ", ") + ")", nil
}

// piecewise prints the pieces as nested conditionals. Values outside every
// condition are NaN.
func (p *printer) piecewise(pieces []domain.Piece) (string, error) {
	if len(pieces) == 0 {
		return "nan()", nil
	}
	value, err := p.print(pieces[0].Value)
	if err != nil {
		return "", err
	}
	cond, err := p.print(pieces[0].Cond)
	if err != nil {
		return "", err
	}
	rest, err := p.piecewise(pieces[1:])
	if err != nil {
		return "", err
	}
	return "(truth(" + cond + ") ? " + value + " : " + rest + ")", nil
}

func (p *printer) join(exprs []domain.Expr, sep, empty string) (string, error) {
	if len(exprs) == 0 {
		return empty, nil
	}
	parts, err := p.all(exprs)
	if err != nil {
		return "", err
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func (p *printer) all(exprs []domain.Expr) ([]string, error) {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		s, err := p.print(e)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// formatFloat prints v as an expr-lang float literal.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan()"
	case math.IsInf(v, 1):
		return "inf()"
	case math.IsInf(v, -1):
		return "(-inf())"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}
