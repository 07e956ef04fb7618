package telemetry

import (
	"context"
	"time"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// SetAttribute does nothing.
func (s *NoOpSpan) SetAttribute(_ string, _ any) {}

// NoOpMetrics is a no-op implementation of ports.Metrics.
type NoOpMetrics struct{}

// CacheHit does nothing.
func (NoOpMetrics) CacheHit(domain.Kind) {}

// CacheMiss does nothing.
func (NoOpMetrics) CacheMiss(domain.Kind) {}

// Fallback does nothing.
func (NoOpMetrics) Fallback(string) {}

// ObserveCompile does nothing.
func (NoOpMetrics) ObserveCompile(domain.Backend, time.Duration) {}

// ObserveInput does nothing.
func (NoOpMetrics) ObserveInput(string, []float64) {}
