package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedOption is returned when a configuration value is outside its allowed set.
	ErrUnsupportedOption = zerr.New("unsupported configuration value")

	// ErrNoInputs is returned when a constant evaluator is called with an empty input mapping.
	ErrNoInputs = zerr.New("no inputs to infer output shape from")

	// ErrMissingInput is returned when an evaluator needs a name that the input mapping does not provide.
	ErrMissingInput = zerr.New("missing input")

	// ErrUndefinedSymbol is returned when an expression references a symbol that is not in its argument list.
	ErrUndefinedSymbol = zerr.New("undefined symbol")

	// ErrShapeMismatch is returned when arrays cannot be broadcast or concatenated together.
	ErrShapeMismatch = zerr.New("array shapes are not compatible")

	// ErrEmptyGroup is returned when an evaluator group has no members.
	ErrEmptyGroup = zerr.New("cannot group zero evaluators")

	// ErrNativeUnsupported is the reason reported when the native backend cannot lower an expression.
	ErrNativeUnsupported = zerr.New("expression is not supported by the native backend")

	// ErrInterpretedCompileFailed is returned when the interpreted backend cannot compile an expression.
	ErrInterpretedCompileFailed = zerr.New("interpreted compilation failed")

	// ErrEvaluationFailed is returned when a compiled evaluator fails at call time.
	ErrEvaluationFailed = zerr.New("evaluation failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrExpressionParseFailed is returned when an expression string cannot be parsed.
	ErrExpressionParseFailed = zerr.New("failed to parse expression")

	// ErrNoOutputs is returned when a config declares no outputs to compile.
	ErrNoOutputs = zerr.New("no outputs configured")

	// ErrInputReadFailed is returned when the input table cannot be read.
	ErrInputReadFailed = zerr.New("failed to read input table")

	// ErrOutputWriteFailed is returned when the output table cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output table")

	// ErrCompileFailed is returned when compiling an expression group fails.
	ErrCompileFailed = zerr.New("compilation failed")
)
