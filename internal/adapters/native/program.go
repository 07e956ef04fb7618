package native

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
)

type opcode uint8

const (
	opLoad opcode = iota
	opConst
	opAdd
	opMul
	opPow
	opCall
)

// instr computes one register from earlier registers.
type instr struct {
	op  opcode
	col int
	val float64
	fn  domain.MathFunc
	in  []int
}

func (i instr) signature() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(i.op)))
	sb.WriteByte(':')
	switch i.op {
	case opLoad:
		sb.WriteString(strconv.Itoa(i.col))
	case opConst:
		sb.WriteString(strconv.FormatUint(math.Float64bits(i.val), 16))
	case opCall:
		sb.WriteString(i.fn.Name)
	}
	for _, r := range i.in {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(r))
	}
	return sb.String()
}

// program is a straight-line register machine. Register r holds the result of prog[r].
type program struct {
	prog    []instr
	outputs []int
}

// builder lowers expression trees into a program, reusing the register of any
// instruction it has already emitted.
type builder struct {
	columns map[string]int
	prog    []instr
	seen    map[uint64][]int
	sigs    []string
}

func newBuilder(args []string) *builder {
	columns := make(map[string]int, len(args))
	for i, a := range args {
		columns[a] = i
	}
	return &builder{columns: columns, seen: make(map[uint64][]int)}
}

// emit appends in unless an identical instruction exists, and returns its register.
func (b *builder) emit(in instr) int {
	sig := in.signature()
	h := xxhash.Sum64String(sig)
	for _, r := range b.seen[h] {
		if b.sigs[r] == sig {
			return r
		}
	}
	r := len(b.prog)
	b.prog = append(b.prog, in)
	b.sigs = append(b.sigs, sig)
	b.seen[h] = append(b.seen[h], r)
	return r
}

// lower compiles a top-level expression. Lists produce one output per item.
func lower(expr domain.Expr, args []string) (*program, error) {
	b := newBuilder(args)

	items := []domain.Expr{expr}
	if t, ok := expr.(*domain.Tuple); ok {
		items = t.Args()
		if len(items) == 0 {
			return nil, domain.Unsupported(domain.ConstructEmptyList)
		}
	}

	outputs := make([]int, len(items))
	for i, item := range items {
		r, err := b.lower(item)
		if err != nil {
			return nil, err
		}
		outputs[i] = r
	}
	return &program{prog: b.prog, outputs: outputs}, nil
}

func (b *builder) lower(e domain.Expr) (int, error) {
	switch e := e.(type) {
	case *domain.Number:
		return b.emit(instr{op: opConst, val: e.Value()}), nil
	case *domain.Symbol:
		col, ok := b.columns[e.Name()]
		if !ok {
			return 0, zerr.With(domain.ErrUndefinedSymbol, "symbol", e.Name())
		}
		return b.emit(instr{op: opLoad, col: col}), nil
	case *domain.Sum:
		return b.fold(opAdd, e.Args(), 0)
	case *domain.Product:
		return b.fold(opMul, e.Args(), 1)
	case *domain.Power:
		regs, err := b.lowerAll([]domain.Expr{e.Base(), e.Exp()})
		if err != nil {
			return 0, err
		}
		return b.emit(instr{op: opPow, in: regs}), nil
	case *domain.Call:
		return b.call(e)
	case *domain.Tuple:
		return 0, domain.Unsupported(domain.ConstructNestedList)
	case *domain.Boolean:
		return 0, domain.Unsupported(domain.ConstructBoolean)
	case *domain.Relational:
		return 0, domain.Unsupported(domain.ConstructRelational)
	case *domain.Conditional:
		return 0, domain.Unsupported(domain.ConstructPiecewise)
	case *domain.NumericFunc:
		return 0, domain.Unsupported(domain.ConstructNumericFunc)
	}
	return 0, domain.Unsupported(domain.ConstructUnknown)
}

// fold emits a left-to-right chain of binary operations.
func (b *builder) fold(op opcode, terms []domain.Expr, identity float64) (int, error) {
	if len(terms) == 0 {
		return b.emit(instr{op: opConst, val: identity}), nil
	}
	regs, err := b.lowerAll(terms)
	if err != nil {
		return 0, err
	}
	acc := regs[0]
	for _, r := range regs[1:] {
		acc = b.emit(instr{op: op, in: []int{acc, r}})
	}
	return acc, nil
}

func (b *builder) call(c *domain.Call) (int, error) {
	if slices.Contains(fallbackOnly, c.Name()) {
		return 0, domain.Unsupported(c.Name())
	}
	fn, ok := domain.LookupMath(c.Name())
	if !ok {
		return 0, domain.Unsupported(c.Name())
	}
	if !fn.AcceptsArgs(len(c.Args())) {
		err := domain.Unsupported(c.Name())
		return 0, zerr.With(err, "operands", len(c.Args()))
	}
	regs, err := b.lowerAll(c.Args())
	if err != nil {
		return 0, err
	}
	return b.emit(instr{op: opCall, fn: fn, in: regs}), nil
}

func (b *builder) lowerAll(exprs []domain.Expr) ([]int, error) {
	regs := make([]int, len(exprs))
	for i, e := range exprs {
		r, err := b.lower(e)
		if err != nil {
			return nil, err
		}
		regs[i] = r
	}
	return regs, nil
}

// fallbackOnly lists the functions the native backend never lowers.
var fallbackOnly = []string{
	domain.FuncAnd,
	domain.FuncOr,
	domain.FuncNot,
	domain.FuncXor,
	domain.FuncHeaviside,
	domain.FuncDiracDelta,
	domain.FuncAmin,
	domain.FuncAmax,
	domain.FuncEqual,
}
