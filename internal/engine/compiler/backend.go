package compiler

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"go.trai.ch/zerr"
)

// BackendCompiler compiles symbolic units, preferring the native backend.
type BackendCompiler struct {
	fast    ports.FastBackend
	interp  ports.InterpretedBackend
	logger  ports.Logger
	metrics ports.Metrics
}

// NewBackendCompiler creates a BackendCompiler. A nil fast backend sends every
// unit to the interpreted backend.
func NewBackendCompiler(
	fast ports.FastBackend,
	interp ports.InterpretedBackend,
	log ports.Logger,
	metrics ports.Metrics,
) *BackendCompiler {
	return &BackendCompiler{
		fast:    fast,
		interp:  interp,
		logger:  log,
		metrics: metrics,
	}
}

// Compile builds an evaluator for expr over rawArgs. The native backend sees
// the sorted unique argument names; when it cannot lower expr the reason is
// logged and the interpreted backend compiles over rawArgs as given.
// Interpreted failures are returned.
func (b *BackendCompiler) Compile(ctx context.Context, expr domain.Expr, rawArgs []string) (*domain.Evaluator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if b.fast != nil {
		args := slices.Compact(domain.SortedNames(rawArgs))
		start := time.Now()
		res := b.fast.TryCompile(expr, args)
		if res.OK() {
			b.metrics.ObserveCompile(domain.BackendNative, time.Since(start))
			_, list := expr.(*domain.Tuple)
			return domain.NewEvaluator(domain.KindSymbolic, domain.BackendNative, callKernel(res.Kernel, args, list)), nil
		}
		reason := fallbackReason(res.Reason)
		b.logger.Debug("native compile failed, using interpreter", "reason", reason, "expr", expr.String())
		b.metrics.Fallback(reason)
	}

	start := time.Now()
	ev, err := b.interp.Compile(expr, rawArgs)
	if err != nil {
		return nil, zerr.With(err, "expr", expr.String())
	}
	b.metrics.ObserveCompile(domain.BackendInterpreted, time.Since(start))
	return ev, nil
}

// callKernel adapts a kernel to named inputs. One argument is passed through;
// several are broadcast and stacked on a new trailing axis in sorted order.
// List expressions concatenate their outputs on the trailing axis.
func callKernel(k domain.Kernel, args []string, list bool) domain.EvalFunc {
	return func(in domain.Inputs) (domain.Array, error) {
		v, err := kernelInput(in, args)
		if err != nil {
			return domain.Array{}, err
		}
		outs, err := k.Call(v)
		if err != nil {
			return domain.Array{}, err
		}
		if !list && len(outs) == 1 {
			return outs[0], nil
		}
		return domain.Concat(outs)
	}
}

func kernelInput(in domain.Inputs, args []string) (domain.Array, error) {
	switch len(args) {
	case 0:
		return in.First()
	case 1:
		return in.Lookup(args[0])
	}

	arrays := make([]domain.Array, len(args))
	for i, name := range args {
		a, err := in.Lookup(name)
		if err != nil {
			return domain.Array{}, err
		}
		arrays[i] = a
	}
	arrays, _, err := domain.Broadcast(arrays...)
	if err != nil {
		return domain.Array{}, err
	}
	return domain.Stack(arrays)
}

// fallbackReason names the construct that kept a unit off the native path.
func fallbackReason(err error) string {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if construct, ok := zErr.Metadata()["construct"].(string); ok {
			return construct
		}
		if msg := zErr.Message(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
