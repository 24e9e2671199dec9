package scratch

import (
	"math"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// Hasher computes the hash used for shard selection.
type Hasher[K any] func(K) uint64

// IntHasher mixes an int key (splitmix64 finalizer) so that consecutive
// worker ids land on different shards.
func IntHasher(i int) uint64 {
	x := uint64(i)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// Pool is a thread-safe sharded cache of values created on first use.
//
// Once a shard is full, inserting a new key evicts the least recently used
// entry of that shard. Holders of an evicted value may keep using it; the
// pool simply forgets it.
//
// Get is allocation-free on a hit.
type Pool[K comparable, V any] struct {
	shards   [ShardCount]poolShard[K, V]
	hasher   Hasher[K]
	create   func(K) V
	capacity int

	tick      atomic.Int64
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type poolShard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*poolEntry[V]
}

type poolEntry[V any] struct {
	value V
	atime atomic.Int64
}

// NewPool creates a pool that calls create for unknown keys. If
// capacity <= 0, DefaultCapacity is used.
func NewPool[K comparable, V any](capacity int, hasher Hasher[K], create func(K) V) *Pool[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	p := &Pool[K, V]{
		hasher:   hasher,
		create:   create,
		capacity: capacity,
	}
	for i := range p.shards {
		p.shards[i].entries = make(map[K]*poolEntry[V])
	}
	return p
}

func (p *Pool[K, V]) shard(key K) *poolShard[K, V] {
	return &p.shards[p.hasher(key)&shardMask]
}

// Get returns the value for key, creating it on first use. The create
// function runs with the shard lock held, so concurrent callers asking for
// the same key get the same value.
func (p *Pool[K, V]) Get(key K) V {
	s := p.shard(key)

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		e.atime.Store(p.tick.Add(1))
		p.hits.Add(1)
		return e.value
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.atime.Store(p.tick.Add(1))
		p.hits.Add(1)
		return e.value
	}
	p.misses.Add(1)

	if len(s.entries) >= p.capacity {
		p.evictOldest(s)
	}
	e = &poolEntry[V]{value: p.create(key)}
	e.atime.Store(p.tick.Add(1))
	s.entries[key] = e
	return e.value
}

// evictOldest removes the least recently used entry. The shard lock must
// be held.
func (p *Pool[K, V]) evictOldest(s *poolShard[K, V]) {
	var (
		oldest K
		found  bool
		atime  int64 = math.MaxInt64
	)
	for k, e := range s.entries {
		if t := e.atime.Load(); t < atime {
			oldest, atime, found = k, t, true
		}
	}
	if found {
		delete(s.entries, oldest)
		p.evictions.Add(1)
	}
}

// Delete forgets key and reports whether it was present.
func (p *Pool[K, V]) Delete(key K) bool {
	s := p.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Each calls fn for every cached value. fn must not call back into the
// pool.
func (p *Pool[K, V]) Each(fn func(K, V)) {
	for i := range p.shards {
		s := &p.shards[i]
		s.mu.RLock()
		for k, e := range s.entries {
			fn(k, e.value)
		}
		s.mu.RUnlock()
	}
}

// Len returns the number of cached values.
func (p *Pool[K, V]) Len() int {
	total := 0
	for i := range p.shards {
		s := &p.shards[i]
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (p *Pool[K, V]) Capacity() int {
	return p.capacity
}

// Stats returns current pool statistics.
func (p *Pool[K, V]) Stats() Stats {
	hits := p.hits.Load()
	misses := p.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       p.Len(),
		Capacity:  p.capacity * ShardCount,
		Hits:      hits,
		Misses:    misses,
		Evictions: p.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats zeroes the hit, miss and eviction counters.
func (p *Pool[K, V]) ResetStats() {
	p.hits.Store(0)
	p.misses.Store(0)
	p.evictions.Store(0)
}
