// Package memory provides the in-process suggestion cache.
package memory

import (
	"sync"
	"time"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
	"github.com/phongnickchinh/tripsearch-cli/internal/core/ports/driven"
)

// DefaultTTL is the default cache entry time-to-live.
const DefaultTTL = time.Hour

// Ensure SuggestionCache implements the interface.
var _ driven.SuggestionCache = (*SuggestionCache)(nil)

// SuggestionCache is an in-memory implementation of
// driven.SuggestionCache: a map with lazy TTL expiry on Get. Expired
// entries are never swept proactively; they are purged when a lookup
// finds them stale or when the cache is cleared.
type SuggestionCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	response *domain.SearchResponse
	storedAt time.Time
}

// NewSuggestionCache creates a cache with the given TTL.
// A TTL of zero or less uses DefaultTTL.
func NewSuggestionCache(ttl time.Duration) *SuggestionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SuggestionCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// SetNow overrides the clock. Only used by tests.
func (c *SuggestionCache) SetNow(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the cached response for the query, or nil if absent or
// expired. An expired entry is deleted so it cannot resurrect.
func (c *SuggestionCache) Get(query string) *domain.SearchResponse {
	key := domain.NormalizeQuery(query)

	c.mu.RLock()
	e, ok := c.entries[key]
	now := c.now()
	c.mu.RUnlock()

	if !ok {
		return nil
	}
	if now.Sub(e.storedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; a Set may have raced in.
		if cur, ok := c.entries[key]; ok && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil
	}
	return e.response
}

// Set stores a response under the normalized query, overwriting any
// prior entry and restarting its TTL.
func (c *SuggestionCache) Set(query string, response *domain.SearchResponse) {
	key := domain.NormalizeQuery(query)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{response: response, storedAt: c.now()}
}

// Clear removes all entries.
func (c *SuggestionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of stored entries.
func (c *SuggestionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL returns the configured entry time-to-live.
func (c *SuggestionCache) TTL() time.Duration {
	return c.ttl
}
