package tablebase

import (
	"sync"

	"github.com/orielsanchez/chess-engine-sub000/internal/board"
)

// CachedProber wraps another prober with an in-memory cache keyed by
// position hash, cutting repeat API calls.
type CachedProber struct {
	inner   Prober
	mu      sync.Mutex
	cache   map[uint64]ProbeResult
	maxSize int
	hits    uint64
	misses  uint64
}

// NewCachedProber creates a cached prober wrapping the given prober.
func NewCachedProber(inner Prober, cacheSize int) *CachedProber {
	return &CachedProber{
		inner:   inner,
		cache:   make(map[uint64]ProbeResult, cacheSize),
		maxSize: cacheSize,
	}
}

// NewCachedLichessProber creates a cached Lichess prober with a default
// cache size.
func NewCachedLichessProber() *CachedProber {
	return NewCachedProber(NewLichessProber(), 100000)
}

func (cp *CachedProber) Probe(pos *board.Position) ProbeResult {
	cp.mu.Lock()
	if result, ok := cp.cache[pos.Hash]; ok {
		cp.hits++
		cp.mu.Unlock()
		return result
	}
	cp.mu.Unlock()

	result := cp.inner.Probe(pos)

	cp.mu.Lock()
	cp.misses++
	if len(cp.cache) >= cp.maxSize {
		// Crude eviction: drop half the cache.
		i := 0
		for k := range cp.cache {
			if i >= cp.maxSize/2 {
				break
			}
			delete(cp.cache, k)
			i++
		}
	}
	cp.cache[pos.Hash] = result
	cp.mu.Unlock()

	return result
}

func (cp *CachedProber) ProbeRoot(pos *board.Position) RootResult {
	// Root probing is not cached, it needs per-move info.
	return cp.inner.ProbeRoot(pos)
}

func (cp *CachedProber) MaxPieces() int {
	return cp.inner.MaxPieces()
}

func (cp *CachedProber) Available() bool {
	return cp.inner.Available()
}

// HitRate returns the cache hit rate as a percentage.
func (cp *CachedProber) HitRate() float64 {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	total := cp.hits + cp.misses
	if total == 0 {
		return 0
	}
	return float64(cp.hits) / float64(total) * 100
}

// CacheSize returns the current number of cached entries.
func (cp *CachedProber) CacheSize() int {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	return len(cp.cache)
}

// Clear drops all cached entries and counters.
func (cp *CachedProber) Clear() {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.cache = make(map[uint64]ProbeResult, cp.maxSize)
	cp.hits = 0
	cp.misses = 0
}
