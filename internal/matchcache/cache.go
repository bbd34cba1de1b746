// Package matchcache memoizes domain match results. Bulk inputs repeat the
// same handful of domains, so each distinct domain is scanned against the
// reference set once. Concurrent lookups for the same domain are
// deduplicated: only one scan runs and all waiters receive its result.
package matchcache

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/optimode/typocheck/types"
)

// DefaultMaxEntries bounds the cache when the caller does not.
const DefaultMaxEntries = 4096

// Cache is a thread-safe, size-bounded memo of domain -> MatchResult.
// Entries never expire: results only depend on the frozen reference set and
// threshold captured by the lookup function.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]types.MatchResult
	maxEntries int
	group      singleflight.Group
	lookup     func(domain string) types.MatchResult
}

// New creates a cache in front of lookup. maxEntries <= 0 selects
// DefaultMaxEntries. Once full, new domains are still computed but no
// longer stored.
func New(maxEntries int, lookup func(domain string) types.MatchResult) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		entries:    make(map[string]types.MatchResult),
		maxEntries: maxEntries,
		lookup:     lookup,
	}
}

// Classify returns the match result for domain, computing it at most once
// while it fits in the cache.
func (c *Cache) Classify(domain string) types.MatchResult {
	c.mu.RLock()
	res, ok := c.entries[domain]
	c.mu.RUnlock()
	if ok {
		return res
	}

	v, _, _ := c.group.Do(domain, func() (any, error) {
		// another caller may have stored it between our read and Do
		c.mu.RLock()
		res, ok := c.entries[domain]
		c.mu.RUnlock()
		if ok {
			return res, nil
		}

		res = c.lookup(domain)

		c.mu.Lock()
		if len(c.entries) < c.maxEntries {
			c.entries[domain] = res
		}
		c.mu.Unlock()
		return res, nil
	})
	return v.(types.MatchResult)
}

// Len returns the number of cached domains (for diagnostics).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
