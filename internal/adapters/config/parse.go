package config

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
)

// piecewiseName is the call that builds a conditional: Piecewise([value, cond], ...).
const piecewiseName = "Piecewise"

// constants are identifiers that parse as numbers instead of symbols.
var constants = map[string]float64{
	"pi":  math.Pi,
	"E":   math.E,
	"oo":  math.Inf(1),
	"nan": math.NaN(),
}

// builtinNames maps expr-lang builtins to the function names of the expression model.
var builtinNames = map[string]string{
	"abs":   "abs",
	"floor": "floor",
	"ceil":  "ceiling",
	"max":   "Max",
	"min":   "Min",
}

// ParseExpr parses an expression written in expr-lang syntax into a domain tree.
func ParseExpr(src string) (domain.Expr, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrExpressionParseFailed.Error())
		return nil, zerr.With(err, "expression", src)
	}
	e, err := convert(tree.Node)
	if err != nil {
		return nil, zerr.With(err, "expression", src)
	}
	return e, nil
}

//nolint:cyclop // one case per node type
func convert(node ast.Node) (domain.Expr, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return domain.Num(float64(n.Value)), nil
	case *ast.FloatNode:
		return domain.Num(n.Value), nil
	case *ast.BoolNode:
		return domain.Bool(n.Value), nil
	case *ast.IdentifierNode:
		if v, ok := constants[n.Value]; ok {
			return domain.Num(v), nil
		}
		return domain.Sym(n.Value), nil
	case *ast.UnaryNode:
		return convertUnary(n)
	case *ast.BinaryNode:
		return convertBinary(n)
	case *ast.CallNode:
		callee, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, unsupportedNode(n)
		}
		if callee.Value == piecewiseName {
			return convertPiecewise(n.Arguments)
		}
		args, err := convertAll(n.Arguments)
		if err != nil {
			return nil, err
		}
		return domain.Fn(callee.Value, args...), nil
	case *ast.BuiltinNode:
		name, ok := builtinNames[n.Name]
		if !ok {
			return nil, zerr.With(domain.ErrExpressionParseFailed, "function", n.Name)
		}
		args, err := convertAll(n.Arguments)
		if err != nil {
			return nil, err
		}
		return domain.Fn(name, args...), nil
	case *ast.ConditionalNode:
		exprs, err := convertAll([]ast.Node{n.Cond, n.Exp1, n.Exp2})
		if err != nil {
			return nil, err
		}
		return domain.Piecewise(
			domain.Piece{Value: exprs[1], Cond: exprs[0]},
			domain.Piece{Value: exprs[2], Cond: domain.Bool(true)},
		), nil
	case *ast.ArrayNode:
		items, err := convertAll(n.Nodes)
		if err != nil {
			return nil, err
		}
		return domain.List(items...), nil
	}
	return nil, unsupportedNode(node)
}

func convertUnary(n *ast.UnaryNode) (domain.Expr, error) {
	operand, err := convert(n.Node)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		if num, ok := operand.(*domain.Number); ok {
			return domain.Num(-num.Value()), nil
		}
		return domain.Neg(operand), nil
	case "+":
		return operand, nil
	case "!", "not":
		return domain.Not(operand), nil
	}
	return nil, zerr.With(domain.ErrExpressionParseFailed, "operator", n.Operator)
}

var relations = map[string]domain.RelOp{
	"<":  domain.OpLt,
	"<=": domain.OpLe,
	">":  domain.OpGt,
	">=": domain.OpGe,
	"==": domain.OpEq,
	"!=": domain.OpNe,
}

func convertBinary(n *ast.BinaryNode) (domain.Expr, error) {
	lhs, err := convert(n.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := convert(n.Right)
	if err != nil {
		return nil, err
	}

	if op, ok := relations[n.Operator]; ok {
		return domain.Rel(op, lhs, rhs), nil
	}
	switch n.Operator {
	case "+":
		return domain.Add(lhs, rhs), nil
	case "-":
		return domain.Sub(lhs, rhs), nil
	case "*":
		return domain.Mul(lhs, rhs), nil
	case "/":
		return domain.Div(lhs, rhs), nil
	case "**", "^":
		return domain.Pow(lhs, rhs), nil
	case "&&", "and":
		return domain.And(lhs, rhs), nil
	case "||", "or":
		return domain.Or(lhs, rhs), nil
	}
	return nil, zerr.With(domain.ErrExpressionParseFailed, "operator", n.Operator)
}

// convertPiecewise reads each argument as a [value, condition] pair.
func convertPiecewise(args []ast.Node) (domain.Expr, error) {
	pieces := make([]domain.Piece, len(args))
	for i, arg := range args {
		pair, ok := arg.(*ast.ArrayNode)
		if !ok || len(pair.Nodes) != 2 {
			err := zerr.With(domain.ErrExpressionParseFailed, "function", piecewiseName)
			return nil, zerr.With(err, "piece", i)
		}
		exprs, err := convertAll(pair.Nodes)
		if err != nil {
			return nil, err
		}
		pieces[i] = domain.Piece{Value: exprs[0], Cond: exprs[1]}
	}
	return domain.Piecewise(pieces...), nil
}

func convertAll(nodes []ast.Node) ([]domain.Expr, error) {
	out := make([]domain.Expr, len(nodes))
	for i, n := range nodes {
		e, err := convert(n)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func unsupportedNode(node ast.Node) error {
	return zerr.With(domain.ErrExpressionParseFailed, "node", fmt.Sprintf("%T", node))
}
