package cache

import (
	"sync"
	"time"

	"github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
)

// DefaultTTL is how long a computed deck is served before it is rebuilt.
const DefaultTTL = 1800 * time.Second

const keyPrefix = "daily-deck:"

// Key returns the cache key for a game date (MM/DD/YYYY).
func Key(date string) string {
	return keyPrefix + date
}

type entry struct {
	pairs     []deck.Pair
	createdAt time.Time
}

// MemoryCache keeps computed decks in memory for a fixed TTL.
// Expired entries are evicted lazily when read.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// NewMemoryCache constructs an empty cache. ttl <= 0 uses DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return NewMemoryCacheWithClock(ttl, time.Now)
}

// NewMemoryCacheWithClock is NewMemoryCache with an explicit time source.
func NewMemoryCacheWithClock(ttl time.Duration, now func() time.Time) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

// Get returns a copy of the pairs stored under key, if still fresh.
func (c *MemoryCache) Get(key string) ([]deck.Pair, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return clonePairs(e.pairs), true
}

// Set stores pairs under key, replacing any previous entry.
func (c *MemoryCache) Set(key string, pairs []deck.Pair) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		pairs:     clonePairs(pairs),
		createdAt: c.now(),
	}
}

// Len reports stored entries, including expired ones not yet read.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func clonePairs(pairs []deck.Pair) []deck.Pair {
	out := make([]deck.Pair, len(pairs))
	copy(out, pairs)
	return out
}
