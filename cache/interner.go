package cache

import (
	"context"
	"sync"
	"sync/atomic"
)

// Interner holds one shared instance per key.
type Interner[K comparable, V any] struct {
	mu       sync.RWMutex
	entries  map[K]V
	name     string
	recorder Recorder

	hits          atomic.Uint64
	misses        atomic.Uint64
	constructions atomic.Uint64
}

// NewInterner creates an empty Interner.
func NewInterner[K comparable, V any](opts ...Option) *Interner[K, V] {
	o := options{name: "interner"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recorder == nil {
		o.recorder = noopRecorder{}
	}

	return &Interner[K, V]{
		entries:  make(map[K]V),
		name:     o.name,
		recorder: o.recorder,
	}
}

// GetOrCreate returns the instance for key, calling create to build it if
// none exists. create runs at most once per key, under the interner's write
// lock, so it must not call back into the same Interner.
func (c *Interner[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
		c.recorder.RecordLookup(context.Background(), c.name, true)
		return value
	}
	c.misses.Add(1)

	c.mu.Lock()
	// Re-check: another caller may have inserted while we waited.
	value, ok = c.entries[key]
	if !ok {
		value = create()
		c.entries[key] = value
		c.constructions.Add(1)
	}
	c.mu.Unlock()

	c.recorder.RecordLookup(context.Background(), c.name, ok)
	return value
}

// Get returns the instance for key without constructing one.
func (c *Interner[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()
	return value, ok
}

// Len returns the number of interned instances.
func (c *Interner[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Name returns the interner's name.
func (c *Interner[K, V]) Name() string {
	return c.name
}

// Stats returns a snapshot of the interner's counters.
func (c *Interner[K, V]) Stats() Stats {
	return Stats{
		Entries:       c.Len(),
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Constructions: c.constructions.Load(),
	}
}
