// Package cache implements the in-memory evaluator cache.
package cache

import (
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/j3din00b/modulus-sym/internal/core/domain"
	"github.com/j3din00b/modulus-sym/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Memory implements ports.EvaluatorCache with a process-lifetime map.
// Entries are never evicted.
type Memory struct {
	mode    domain.CacheKeyMode
	mu      sync.RWMutex
	entries map[uint64][]entry
	size    int
	flight  singleflight.Group
}

// entry is one stored evaluator. Entries sharing a hash bucket are told apart by key.
type entry struct {
	key  string
	eval *domain.Evaluator
}

// NewMemory creates an empty cache keyed by expression identity or structure.
func NewMemory(mode domain.CacheKeyMode) (*Memory, error) {
	switch mode {
	case "":
		mode = domain.CacheKeyIdentity
	case domain.CacheKeyIdentity, domain.CacheKeyStructural:
	default:
		err := zerr.With(domain.ErrUnsupportedOption, "option", "cache.key")
		return nil, zerr.With(err, "value", string(mode))
	}
	return &Memory{
		mode:    mode,
		entries: make(map[uint64][]entry),
	}, nil
}

// Mode returns the key mode the cache was created with.
func (m *Memory) Mode() domain.CacheKeyMode {
	return m.mode
}

// GetOrCompile returns the evaluator stored for (expr, args). On a miss it runs
// compile once per key, even when several callers miss concurrently, and stores
// the result. A failed compile stores nothing.
func (m *Memory) GetOrCompile(expr domain.Expr, args domain.ArgKey, compile ports.CompileFunc) (*domain.Evaluator, error) {
	hash, key := m.key(expr, args)
	if ev, ok := m.lookup(hash, key); ok {
		return ev, nil
	}

	v, err, _ := m.flight.Do(key, func() (any, error) {
		if ev, ok := m.lookup(hash, key); ok {
			return ev, nil
		}
		ev, err := compile()
		if err != nil {
			return nil, err
		}
		m.store(hash, key, ev)
		return ev, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Evaluator), nil
}

// Len returns the number of stored evaluators.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.size
}

// key returns the bucket hash and the full key for (expr, args). Structural
// keys hash the expression fingerprint; the canonical encoding in the full key
// tells colliding fingerprints apart.
func (m *Memory) key(expr domain.Expr, args domain.ArgKey) (uint64, string) {
	var sum uint64
	var key string
	if m.mode == domain.CacheKeyStructural {
		sum = domain.Fingerprint(expr)
		key = "s:" + domain.Canonical(expr)
	} else {
		sum = uint64(expr.ID())
		key = "i:" + strconv.FormatUint(sum, 10)
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], sum)
	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(string(args))
	return d.Sum64(), key + "\x00" + string(args)
}

func (m *Memory) lookup(hash uint64, key string) (*domain.Evaluator, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.entries[hash] {
		if e.key == key {
			return e.eval, true
		}
	}
	return nil, false
}

func (m *Memory) store(hash uint64, key string, ev *domain.Evaluator) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries[hash] {
		if e.key == key {
			return
		}
	}
	m.entries[hash] = append(m.entries[hash], entry{key: key, eval: ev})
	m.size++
}
