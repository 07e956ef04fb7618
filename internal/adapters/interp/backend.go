// Package interp implements the interpreted backend: expressions are printed as
// expr-lang programs and run element by element.
package interp

import (
	"math"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"go.trai.ch/zerr"
)

// Backend implements ports.InterpretedBackend.
type Backend struct {
	functions []expr.Option
}

// New creates a backend with the math and special function tables registered.
func New() *Backend {
	functions := []expr.Option{
		expr.Function("nan", func(...any) (any, error) { return math.NaN(), nil }, new(func() float64)),
		expr.Function("inf", func(...any) (any, error) { return math.Inf(1), nil }, new(func() float64)),
		expr.Function("truth", func(args ...any) (any, error) { return truth(args[0]), nil }, new(func(any) bool)),
	}
	for _, fn := range domain.MathFuncs() {
		functions = append(functions, expr.Function(funcPrefix+fn.Name, mathFunction(fn)))
	}
	for name, fn := range specials {
		functions = append(functions, expr.Function(funcPrefix+name, fn))
	}
	return &Backend{functions: functions}
}

// Compile builds an evaluator over args. The evaluator takes its inputs by
// name. Symbols missing from args are reported when the evaluator is called.
func (b *Backend) Compile(e domain.Expr, args []string) (*domain.Evaluator, error) {
	p := newPrinter(args)
	src, err := p.program(e)
	if err != nil {
		return nil, err
	}

	if len(p.undefined) > 0 {
		names := slices.Compact(domain.SortedNames(p.undefined))
		undefined := zerr.With(domain.ErrUndefinedSymbol, "symbols", names)
		return domain.NewEvaluator(domain.KindSymbolic, domain.BackendInterpreted, func(domain.Inputs) (domain.Array, error) {
			return domain.Array{}, undefined
		}), nil
	}

	env := make(map[string]any, len(p.aliases))
	for _, alias := range p.aliases {
		env[alias] = 0.0
	}
	opts := append([]expr.Option{expr.Env(env)}, b.functions...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrInterpretedCompileFailed.Error())
		return nil, zerr.With(err, "source", src)
	}

	ev := &evaluation{program: program, args: args, width: 1}
	if t, ok := e.(*domain.Tuple); ok {
		ev.list = true
		ev.width = len(t.Args())
	}
	for _, name := range domain.FreeSymbols(e) {
		ev.refs = append(ev.refs, ref{name: name, alias: p.aliases[name]})
	}
	return domain.NewEvaluator(domain.KindSymbolic, domain.BackendInterpreted, ev.eval), nil
}

type ref struct {
	name  string
	alias string
}

// evaluation runs a compiled program once per broadcast element.
type evaluation struct {
	program *vm.Program
	args    []string
	refs    []ref
	list    bool
	width   int
}

func (ev *evaluation) eval(in domain.Inputs) (domain.Array, error) {
	operands, err := ev.operands(in)
	if err != nil {
		return domain.Array{}, err
	}
	aligned, shape, err := domain.Broadcast(operands...)
	if err != nil {
		return domain.Array{}, err
	}
	n := 1
	for _, d := range shape {
		n *= d
	}

	columns := make([][]any, ev.width)
	for c := range columns {
		columns[c] = make([]any, n)
	}

	var machine vm.VM
	env := make(map[string]any, len(ev.refs))
	for i := range n {
		for k, r := range ev.refs {
			env[r.alias] = aligned[k].Float(i)
		}
		out, err := machine.Run(ev.program, env)
		if err != nil {
			return domain.Array{}, zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "element", i)
		}
		if !ev.list {
			columns[0][i] = out
			continue
		}
		values, ok := out.([]any)
		if !ok || len(values) != ev.width {
			return domain.Array{}, zerr.With(domain.ErrEvaluationFailed, "element", i)
		}
		for c, v := range values {
			columns[c][i] = v
		}
	}

	arrays := make([]domain.Array, ev.width)
	for c, values := range columns {
		if arrays[c], err = toArray(shape, values); err != nil {
			return domain.Array{}, err
		}
	}
	if !ev.list {
		return arrays[0], nil
	}
	return domain.Concat(arrays)
}

// operands returns the arrays the result shape is broadcast from: the referenced
// symbols, or every supplied argument when the expression references none.
func (ev *evaluation) operands(in domain.Inputs) ([]domain.Array, error) {
	if len(ev.refs) > 0 {
		out := make([]domain.Array, len(ev.refs))
		for i, r := range ev.refs {
			a, err := in.Lookup(r.name)
			if err != nil {
				return nil, err
			}
			out[i] = a
		}
		return out, nil
	}

	var out []domain.Array
	for _, name := range slices.Compact(domain.SortedNames(ev.args)) {
		if a, ok := in[name]; ok {
			out = append(out, a)
		}
	}
	if len(out) == 0 {
		for _, name := range in.Names() {
			out = append(out, in[name])
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNoInputs
	}
	return out, nil
}

// toArray builds a bool array when every value is bool, otherwise a float array.
func toArray(shape []int, values []any) (domain.Array, error) {
	allBool := len(values) > 0
	for _, v := range values {
		if _, ok := v.(bool); !ok {
			allBool = false
			break
		}
	}
	if allBool {
		data := make([]bool, len(values))
		for i, v := range values {
			data[i] = v.(bool)
		}
		return domain.NewBoolArray(shape, data)
	}

	data := make([]float64, len(values))
	for i, v := range values {
		f, err := toFloat(v)
		if err != nil {
			return domain.Array{}, zerr.Wrap(err, domain.ErrEvaluationFailed.Error())
		}
		data[i] = f
	}
	return domain.NewArray(shape, data)
}
