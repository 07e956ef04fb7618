package domain

import "go.trai.ch/zerr"

// Kind is the compilation strategy chosen for an expression unit.
type Kind uint8

const (
	// KindSymbolic units are compiled by a backend.
	KindSymbolic Kind = iota
	// KindFunction units are already numeric functions.
	KindFunction
	// KindNumeric units are numeric constants.
	KindNumeric
	// KindBoolean units are boolean constants.
	KindBoolean
	// KindGroup evaluators concatenate the outputs of their members.
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindSymbolic:
		return "symbolic"
	case KindFunction:
		return "function"
	case KindNumeric:
		return "numeric"
	case KindBoolean:
		return "boolean"
	case KindGroup:
		return "group"
	}
	return "unknown"
}

// Backend names what produced an evaluator.
type Backend string

// Evaluator producers.
const (
	BackendConstant    Backend = "constant"
	BackendFunction    Backend = "function"
	BackendNative      Backend = "native"
	BackendInterpreted Backend = "interpreted"
	BackendGroup       Backend = "group"
)

// Evaluator is a compiled numeric function over named batched arrays.
// Evaluators are shared by pointer, so a cached evaluator is the same value
// every time it is returned.
type Evaluator struct {
	kind    Kind
	backend Backend
	fn      EvalFunc
	members []*Evaluator
}

// NewEvaluator wraps fn.
func NewEvaluator(kind Kind, backend Backend, fn EvalFunc) *Evaluator {
	return &Evaluator{kind: kind, backend: backend, fn: fn}
}

// NewGroupEvaluator wraps fn as the evaluator of an ordered member list.
func NewGroupEvaluator(members []*Evaluator, fn EvalFunc) *Evaluator {
	return &Evaluator{
		kind:    KindGroup,
		backend: BackendGroup,
		fn:      fn,
		members: append([]*Evaluator(nil), members...),
	}
}

// Eval runs the evaluator.
func (e *Evaluator) Eval(in Inputs) (Array, error) {
	return e.fn(in)
}

// Kind returns the strategy the evaluator was built with.
func (e *Evaluator) Kind() Kind { return e.kind }

// Backend returns what produced the evaluator.
func (e *Evaluator) Backend() Backend { return e.backend }

// Members returns the grouped evaluators, in order. It is empty for non-group evaluators.
func (e *Evaluator) Members() []*Evaluator {
	return append([]*Evaluator(nil), e.members...)
}

// Kernel is a vector function produced by the native backend.
type Kernel interface {
	// Arity is the number of arguments the kernel reads.
	Arity() int
	// Outputs is the number of arrays Call returns.
	Outputs() int
	// Call evaluates the kernel elementwise. With a single argument v holds its
	// values directly; otherwise each argument is one column of the trailing axis of v.
	Call(v Array) ([]Array, error)
}

// FastResult is the outcome of a native compile attempt: a kernel, or the reason there is none.
type FastResult struct {
	Kernel Kernel
	Reason error
}

// FastOK reports a successful native compile.
func FastOK(k Kernel) FastResult {
	return FastResult{Kernel: k}
}

// FastFailed reports why the native backend could not compile an expression.
func FastFailed(reason error) FastResult {
	if reason == nil {
		reason = ErrNativeUnsupported
	}
	return FastResult{Reason: reason}
}

// OK reports whether a kernel was produced.
func (r FastResult) OK() bool {
	return r.Kernel != nil && r.Reason == nil
}

// Constructs the native backend reports when it cannot lower a node.
const (
	ConstructEmptyList   = "empty list"
	ConstructNestedList  = "nested list"
	ConstructBoolean     = "boolean"
	ConstructRelational  = "relational"
	ConstructPiecewise   = "piecewise"
	ConstructNumericFunc = "numeric function"
	ConstructUnknown     = "unknown node"
)

// ReasonOther labels fallback reasons outside the known set.
const ReasonOther = "other"

// FallbackLabel maps a fallback reason onto a bounded set: constructs,
// special and elementwise function names and the native sentinel messages
// pass through, anything else becomes ReasonOther.
func FallbackLabel(reason string) string {
	switch reason {
	case ConstructEmptyList, ConstructNestedList, ConstructBoolean, ConstructRelational,
		ConstructPiecewise, ConstructNumericFunc, ConstructUnknown,
		FuncAnd, FuncOr, FuncNot, FuncXor, FuncHeaviside, FuncDiracDelta, FuncAmin, FuncAmax, FuncEqual,
		ErrUndefinedSymbol.Error(), ErrNativeUnsupported.Error():
		return reason
	}
	if _, ok := LookupMath(reason); ok {
		return reason
	}
	return ReasonOther
}

// Unsupported builds the reason for an expression node the native backend cannot lower.
func Unsupported(what string) error {
	return zerr.With(ErrNativeUnsupported, "construct", what)
}
