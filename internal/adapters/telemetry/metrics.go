package telemetry

import (
	"math"
	"time"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/zerr"
)

const namespace = "lambdify"

// log2Floor keeps log2 finite for zero inputs.
const log2Floor = 1e-30

// PromMetrics implements ports.Metrics with Prometheus collectors.
type PromMetrics struct {
	mode        domain.HistogramMode
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	compileTime *prometheus.HistogramVec
	inputValues *prometheus.HistogramVec
}

// NewPromMetrics registers the collectors on reg. Input histograms are recorded
// on a linear scale, on a log2 scale of the magnitude, or not at all.
func NewPromMetrics(reg prometheus.Registerer, mode domain.HistogramMode) (*PromMetrics, error) {
	var buckets []float64
	switch mode {
	case domain.HistogramsOff:
	case domain.HistogramsLinear:
		buckets = prometheus.LinearBuckets(-10, 1, 21)
	case domain.HistogramsLog2:
		buckets = prometheus.LinearBuckets(-32, 2, 33)
	default:
		err := zerr.With(domain.ErrUnsupportedOption, "option", "monitor.histograms")
		return nil, zerr.With(err, "value", string(mode))
	}

	factory := promauto.With(reg)
	m := &PromMetrics{
		mode: mode,
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Expression units served from the evaluator cache.",
		}, []string{"kind"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Expression units compiled because the cache had no entry.",
		}, []string{"kind"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Native compile failures routed to the interpreted backend.",
		}, []string{"reason"}),
		compileTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "compile_duration_seconds",
			Help:      "Time spent compiling one expression unit.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"backend"}),
	}
	if buckets != nil {
		m.inputValues = factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "input_values",
			Help:        "Distribution of input values.",
			Buckets:     buckets,
			ConstLabels: prometheus.Labels{"scale": string(mode)},
		}, []string{"input"})
	}
	return m, nil
}

// CacheHit counts a cache hit.
func (m *PromMetrics) CacheHit(kind domain.Kind) {
	m.cacheHits.WithLabelValues(kind.String()).Inc()
}

// CacheMiss counts a cache miss.
func (m *PromMetrics) CacheMiss(kind domain.Kind) {
	m.cacheMisses.WithLabelValues(kind.String()).Inc()
}

// Fallback counts a native compile failure. Reasons outside the known set
// are counted as domain.ReasonOther.
func (m *PromMetrics) Fallback(reason string) {
	m.fallbacks.WithLabelValues(domain.FallbackLabel(reason)).Inc()
}

// ObserveCompile records a compile duration.
func (m *PromMetrics) ObserveCompile(backend domain.Backend, d time.Duration) {
	m.compileTime.WithLabelValues(string(backend)).Observe(d.Seconds())
}

// ObserveInput records the values of one input. NaN values are skipped.
func (m *PromMetrics) ObserveInput(name string, values []float64) {
	if m.inputValues == nil {
		return
	}
	h := m.inputValues.WithLabelValues(name)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if m.mode == domain.HistogramsLog2 {
			v = math.Log2(math.Abs(v) + log2Floor)
		}
		h.Observe(v)
	}
}
