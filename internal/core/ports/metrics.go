package ports

import (
	"time"

	"github.com/j3din00b/modulus-sym/internal/core/domain"
)

// Metrics records compiler and evaluation counters.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// CacheHit counts a cache hit for an expression unit of the given kind.
	CacheHit(kind domain.Kind)
	// CacheMiss counts a cache miss for an expression unit of the given kind.
	CacheMiss(kind domain.Kind)
	// Fallback counts a native compile failure routed to the interpreted backend.
	Fallback(reason string)
	// ObserveCompile records how long a backend took to compile one unit.
	ObserveCompile(backend domain.Backend, d time.Duration)
	// ObserveInput records the distribution of one input array.
	ObserveInput(name string, values []float64)
}
