// Package domain contains the core models of the expression compiler:
// symbolic expression trees, batched arrays, argument specifications and evaluators.
package domain

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// ExprID is the stable identity of an expression node.
// It is assigned once at construction and is never reused within a process.
type ExprID uint64

var lastExprID atomic.Uint64

type node struct {
	id ExprID
}

func newNode() node {
	return node{id: ExprID(lastExprID.Add(1))}
}

// ID returns the identity assigned when the node was constructed.
func (n node) ID() ExprID { return n.id }

func (node) expr() {}

// Expr is a node of a symbolic expression tree.
//
// The set of node types is closed: Symbol, Number, Boolean, Sum, Product, Power,
// Call, Relational, Conditional, Tuple and NumericFunc.
type Expr interface {
	// ID returns the identity of this node. Structurally equal trees built
	// separately have different identities.
	ID() ExprID
	// Args returns the direct children of the node.
	Args() []Expr
	// String renders the node in a canonical textual form.
	String() string
	// Subs replaces every symbol called name with value.
	// The receiver is returned unchanged when no replacement happened.
	Subs(name string, value Expr) Expr

	expr()
}

// Symbol is a named scalar variable.
type Symbol struct {
	node
	name Name
}

// Sym creates a new symbol.
func Sym(name string) *Symbol {
	return &Symbol{node: newNode(), name: NewName(name)}
}

// Syms creates one symbol per name.
func Syms(names ...string) []*Symbol {
	out := make([]*Symbol, len(names))
	for i, n := range names {
		out[i] = Sym(n)
	}
	return out
}

// Name returns the symbol name.
func (s *Symbol) Name() string { return s.name.String() }

func (s *Symbol) Args() []Expr { return nil }

func (s *Symbol) String() string { return s.name.String() }

func (s *Symbol) Subs(name string, value Expr) Expr {
	if s.Name() == name {
		return value
	}
	return s
}

// Number is a floating point literal.
type Number struct {
	node
	value float64
}

// Num creates a numeric literal.
func Num(v float64) *Number {
	return &Number{node: newNode(), value: v}
}

// Value returns the literal value.
func (n *Number) Value() float64 { return n.value }

func (n *Number) Args() []Expr { return nil }

func (n *Number) String() string { return formatNumber(n.value) }

func (n *Number) Subs(string, Expr) Expr { return n }

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "oo"
	case math.IsInf(v, -1):
		return "-oo"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Boolean is a resolved truth value.
type Boolean struct {
	node
	value bool
}

// Bool creates a boolean literal.
func Bool(v bool) *Boolean {
	return &Boolean{node: newNode(), value: v}
}

// Value returns the truth value.
func (b *Boolean) Value() bool { return b.value }

func (b *Boolean) Args() []Expr { return nil }

func (b *Boolean) String() string {
	if b.value {
		return "True"
	}
	return "False"
}

func (b *Boolean) Subs(string, Expr) Expr { return b }

// Sum is the addition of its terms.
type Sum struct {
	node
	terms []Expr
}

// Add creates the sum of terms.
func Add(terms ...Expr) *Sum {
	return &Sum{node: newNode(), terms: terms}
}

// Sub creates a - b.
func Sub(a, b Expr) *Sum {
	return Add(a, Neg(b))
}

func (s *Sum) Args() []Expr { return s.terms }

func (s *Sum) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	return "(" + joinExprs(s.terms, " + ") + ")"
}

func (s *Sum) Subs(name string, value Expr) Expr {
	terms, changed := subsAll(s.terms, name, value)
	if !changed {
		return s
	}
	return Add(terms...)
}

// Product is the multiplication of its factors.
type Product struct {
	node
	factors []Expr
}

// Mul creates the product of factors.
func Mul(factors ...Expr) *Product {
	return &Product{node: newNode(), factors: factors}
}

// Neg creates -a.
func Neg(a Expr) *Product {
	return Mul(Num(-1), a)
}

// Div creates a / b.
func Div(a, b Expr) *Product {
	return Mul(a, Pow(b, Num(-1)))
}

func (p *Product) Args() []Expr { return p.factors }

func (p *Product) String() string {
	if len(p.factors) == 0 {
		return "1"
	}
	return "(" + joinExprs(p.factors, "*") + ")"
}

func (p *Product) Subs(name string, value Expr) Expr {
	factors, changed := subsAll(p.factors, name, value)
	if !changed {
		return p
	}
	return Mul(factors...)
}

// Power is base raised to exp.
type Power struct {
	node
	base, exp Expr
}

// Pow creates base**exp.
func Pow(base, exp Expr) *Power {
	return &Power{node: newNode(), base: base, exp: exp}
}

// Base returns the base operand.
func (p *Power) Base() Expr { return p.base }

// Exp returns the exponent operand.
func (p *Power) Exp() Expr { return p.exp }

func (p *Power) Args() []Expr { return []Expr{p.base, p.exp} }

func (p *Power) String() string {
	return "(" + p.base.String() + "**" + p.exp.String() + ")"
}

func (p *Power) Subs(name string, value Expr) Expr {
	base := p.base.Subs(name, value)
	exp := p.exp.Subs(name, value)
	if base == p.base && exp == p.exp {
		return p
	}
	return Pow(base, exp)
}

// Call is the application of a named function, for example sin(x) or Heaviside(x, 0).
type Call struct {
	node
	name string
	args []Expr
}

// Fn creates a call of the named function.
func Fn(name string, args ...Expr) *Call {
	return &Call{node: newNode(), name: name, args: args}
}

// And creates the logical conjunction of its operands.
func And(args ...Expr) *Call { return Fn(FuncAnd, args...) }

// Or creates the logical disjunction of its operands.
func Or(args ...Expr) *Call { return Fn(FuncOr, args...) }

// Not creates the logical negation of a.
func Not(a Expr) *Call { return Fn(FuncNot, a) }

// Xor creates the logical exclusive or of its operands.
func Xor(args ...Expr) *Call { return Fn(FuncXor, args...) }

// Name returns the function name.
func (c *Call) Name() string { return c.name }

func (c *Call) Args() []Expr { return c.args }

func (c *Call) String() string {
	return c.name + "(" + joinExprs(c.args, ", ") + ")"
}

func (c *Call) Subs(name string, value Expr) Expr {
	args, changed := subsAll(c.args, name, value)
	if !changed {
		return c
	}
	if b, ok := foldLogic(c.name, args); ok {
		return Bool(b)
	}
	return Fn(c.name, args...)
}

// RelOp is a comparison operator.
type RelOp string

// Comparison operators.
const (
	OpLt RelOp = "<"
	OpLe RelOp = "<="
	OpGt RelOp = ">"
	OpGe RelOp = ">="
	OpEq RelOp = "=="
	OpNe RelOp = "!="
)

// Compare applies the operator to two numbers.
func (op RelOp) Compare(a, b float64) bool {
	switch op {
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	case OpEq:
		return a == b
	case OpNe:
		return a != b
	}
	return false
}

// Relational is a comparison between two expressions.
type Relational struct {
	node
	op       RelOp
	lhs, rhs Expr
}

// Rel creates a comparison.
func Rel(op RelOp, lhs, rhs Expr) *Relational {
	return &Relational{node: newNode(), op: op, lhs: lhs, rhs: rhs}
}

// Lt creates lhs < rhs.
func Lt(lhs, rhs Expr) *Relational { return Rel(OpLt, lhs, rhs) }

// Le creates lhs <= rhs.
func Le(lhs, rhs Expr) *Relational { return Rel(OpLe, lhs, rhs) }

// Gt creates lhs > rhs.
func Gt(lhs, rhs Expr) *Relational { return Rel(OpGt, lhs, rhs) }

// Ge creates lhs >= rhs.
func Ge(lhs, rhs Expr) *Relational { return Rel(OpGe, lhs, rhs) }

// Eq creates lhs == rhs.
func Eq(lhs, rhs Expr) *Relational { return Rel(OpEq, lhs, rhs) }

// Ne creates lhs != rhs.
func Ne(lhs, rhs Expr) *Relational { return Rel(OpNe, lhs, rhs) }

// Op returns the comparison operator.
func (r *Relational) Op() RelOp { return r.op }

// LHS returns the left operand.
func (r *Relational) LHS() Expr { return r.lhs }

// RHS returns the right operand.
func (r *Relational) RHS() Expr { return r.rhs }

func (r *Relational) Args() []Expr { return []Expr{r.lhs, r.rhs} }

func (r *Relational) String() string {
	return "(" + r.lhs.String() + " " + string(r.op) + " " + r.rhs.String() + ")"
}

// Subs substitutes into both operands. When both sides become numeric the
// comparison resolves to a Boolean.
func (r *Relational) Subs(name string, value Expr) Expr {
	lhs := r.lhs.Subs(name, value)
	rhs := r.rhs.Subs(name, value)
	if lhs == r.lhs && rhs == r.rhs {
		return r
	}
	a, okA := Evalf(lhs)
	b, okB := Evalf(rhs)
	if okA && okB {
		return Bool(r.op.Compare(a, b))
	}
	return Rel(r.op, lhs, rhs)
}

// Piece is one (value, condition) branch of a Conditional.
type Piece struct {
	Value Expr
	Cond  Expr
}

// Conditional selects the value of the first piece whose condition holds.
// Rows where no condition holds evaluate to NaN.
type Conditional struct {
	node
	pieces []Piece
}

// Piecewise creates a conditional expression.
func Piecewise(pieces ...Piece) *Conditional {
	return &Conditional{node: newNode(), pieces: pieces}
}

// Pieces returns the branches in order.
func (c *Conditional) Pieces() []Piece { return c.pieces }

func (c *Conditional) Args() []Expr {
	out := make([]Expr, 0, 2*len(c.pieces))
	for _, p := range c.pieces {
		out = append(out, p.Value, p.Cond)
	}
	return out
}

func (c *Conditional) String() string {
	parts := make([]string, len(c.pieces))
	for i, p := range c.pieces {
		parts[i] = "(" + p.Value.String() + ", " + p.Cond.String() + ")"
	}
	return "Piecewise(" + strings.Join(parts, ", ") + ")"
}

func (c *Conditional) Subs(name string, value Expr) Expr {
	changed := false
	pieces := make([]Piece, len(c.pieces))
	for i, p := range c.pieces {
		pieces[i] = Piece{Value: p.Value.Subs(name, value), Cond: p.Cond.Subs(name, value)}
		if pieces[i].Value != p.Value || pieces[i].Cond != p.Cond {
			changed = true
		}
	}
	if !changed {
		return c
	}
	return Piecewise(pieces...)
}

// Tuple is an ordered list of outputs. Each item contributes one trailing column.
type Tuple struct {
	node
	items []Expr
}

// List creates a multi-output expression.
func List(items ...Expr) *Tuple {
	return &Tuple{node: newNode(), items: items}
}

func (t *Tuple) Args() []Expr { return t.items }

func (t *Tuple) String() string {
	return "[" + joinExprs(t.items, ", ") + "]"
}

func (t *Tuple) Subs(name string, value Expr) Expr {
	items, changed := subsAll(t.items, name, value)
	if !changed {
		return t
	}
	return List(items...)
}

// SubsAll applies every substitution in values, in sorted name order.
func SubsAll(e Expr, values map[string]Expr) Expr {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		e = e.Subs(name, values[name])
	}
	return e
}

func subsAll(exprs []Expr, name string, value Expr) ([]Expr, bool) {
	out := make([]Expr, len(exprs))
	changed := false
	for i, e := range exprs {
		out[i] = e.Subs(name, value)
		if out[i] != e {
			changed = true
		}
	}
	return out, changed
}

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}
