// Package apiclient is the typed Go client for the Prootly admin API.
// Reads go through a request-keyed cache that shares one underlying fetch
// between concurrent identical requests; writes invalidate the read keys
// they affect so the next read refetches.
package apiclient

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cache holds fetched response bodies keyed by request path+query.
// Entries live until explicitly invalidated. Errors are never cached:
// a failed fetch leaves any previously cached value in place.
type cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	group   singleflight.Group
}

func newCache() *cache {
	return &cache{entries: make(map[string][]byte)}
}

// get returns the cached body for key, or runs fetch to fill it.
// Concurrent callers with the same key share a single fetch and all
// receive the same result or the same error.
func (c *cache) get(ctx context.Context, key string, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the flight: another caller may have filled the
		// entry between the miss and the flight starting.
		c.mu.RLock()
		data, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return data, nil
		}

		body, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = body
		c.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// invalidate drops every entry whose key starts with one of the prefixes.
// A list key and all search keys for an entity share its path prefix, so
// one prefix invalidates both.
func (c *cache) invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.entries, key)
				break
			}
		}
	}
}
