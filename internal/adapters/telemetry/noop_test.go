package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/j3din00b/modulus-sym/internal/adapters/telemetry"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"github.com/stretchr/testify/assert"
)

func TestNoOpTracer_Start(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test-span", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, newCtx)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("test error"))
	span.End()
}

func TestNoOpMetrics(t *testing.T) {
	t.Parallel()

	var m ports.Metrics = telemetry.NoOpMetrics{}
	assert.NotPanics(t, func() {
		m.CacheHit(domain.KindSymbolic)
		m.CacheMiss(domain.KindNumeric)
		m.Fallback("piecewise")
		m.ObserveCompile(domain.BackendNative, time.Millisecond)
		m.ObserveInput("x", []float64{1, 2})
	})
}
