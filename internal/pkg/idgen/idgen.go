// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/KirkDiggler/monster-maker/internal/pkg/clock"
)

// Generator generates unique string identifiers
type Generator interface {
	Generate() string
}

// Sequence hands out unique, strictly increasing int64 identifiers
type Sequence interface {
	Next() int64
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// Monotonic issues creation-order timestamps in nanoseconds. Two calls within
// the same clock tick still get distinct values: the second one is bumped past
// the last issued ID.
type Monotonic struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

// NewMonotonic creates a timestamp sequence backed by c (real time when nil)
func NewMonotonic(c clock.Clock) *Monotonic {
	if c == nil {
		c = clock.New()
	}
	return &Monotonic{clock: c}
}

// Next returns the next ID
func (m *Monotonic) Next() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now().UnixNano()
	if now <= m.last {
		now = m.last + 1
	}
	m.last = now
	return now
}

// Counter is a Sequence starting at 1, for tests and deterministic replays
type Counter struct {
	n int64
}

// Next returns the next ID
func (c *Counter) Next() int64 {
	return atomic.AddInt64(&c.n, 1)
}
