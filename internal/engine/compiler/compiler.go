package compiler

import (
	"context"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"go.trai.ch/zerr"
)

// Compiler compiles groups of expressions into a single evaluator.
type Compiler struct {
	cache   ports.EvaluatorCache
	backend *BackendCompiler
	tracer  ports.Tracer
	metrics ports.Metrics
}

// New creates a Compiler that memoizes units in cache.
func New(
	cache ports.EvaluatorCache,
	backend *BackendCompiler,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Compiler {
	return &Compiler{
		cache:   cache,
		backend: backend,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Compile compiles a single expression. The result is a group of one.
func (c *Compiler) Compile(ctx context.Context, expr domain.Expr, spec domain.ArgSpec) (*domain.Evaluator, error) {
	return c.CompileGroup(ctx, []domain.Expr{expr}, spec)
}

// CompileGroup compiles every expression over the arguments spec resolves to
// and groups the results in order. Cancellation is checked between units.
func (c *Compiler) CompileGroup(ctx context.Context, exprs []domain.Expr, spec domain.ArgSpec) (*domain.Evaluator, error) {
	args := domain.ResolveArgs(spec)
	key := domain.CanonicalArgs(args)

	ctx, span := c.tracer.Start(ctx, "compile_group",
		ports.WithAttribute("outputs", len(exprs)),
		ports.WithAttribute("args", key.Names()),
	)
	defer span.End()

	evaluators := make([]*domain.Evaluator, 0, len(exprs))
	for i, e := range exprs {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return nil, err
		}
		ev, err := c.compileUnit(ctx, e, args, key)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "output", i)
			span.RecordError(err)
			return nil, err
		}
		evaluators = append(evaluators, ev)
	}

	group, err := Group(evaluators)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return group, nil
}

// compileUnit resolves one expression through the cache. Numeric functions
// are wrapped on every call and never stored.
func (c *Compiler) compileUnit(
	ctx context.Context,
	e domain.Expr,
	args []string,
	key domain.ArgKey,
) (*domain.Evaluator, error) {
	cls := Classify(e)
	ctx, span := c.tracer.Start(ctx, "compile_unit", ports.WithAttribute("kind", cls.Kind))
	defer span.End()

	if cls.Kind == domain.KindFunction {
		span.SetAttribute("params", cls.Params())
		return cls.Evaluator(), nil
	}

	hit := true
	ev, err := c.cache.GetOrCompile(e, key, func() (*domain.Evaluator, error) {
		hit = false
		if direct := cls.Evaluator(); direct != nil {
			return direct, nil
		}
		return c.backend.Compile(ctx, e, args)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if hit {
		c.metrics.CacheHit(cls.Kind)
	} else {
		c.metrics.CacheMiss(cls.Kind)
	}
	span.SetAttribute("cache_hit", hit)
	span.SetAttribute("backend", string(ev.Backend()))
	return ev, nil
}
