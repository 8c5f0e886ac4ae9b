package core

// cache.go implements the optional content-hash memoization of validation
// results. The original tool memoized parsed workbooks keyed on the
// uploaded bytes; here the cache sits at the service boundary and stores
// the finished record list per input digest. The rule engine itself never
// sees it, and because the key is a digest of the exact input bytes,
// different inputs can never observe each other's results.

import (
	"encoding/hex"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/washimkgp/JPW-File-Validator-New-V1/internal/rules"
)

// ContentKey returns the cache key for a payload: the hex xxhash digest of
// the exact input bytes.
func ContentKey(data []byte) string {
	digest := xxhash.New()
	digest.Write(data)
	return hex.EncodeToString(digest.Sum(nil))
}

// resultCache is a bounded FIFO cache of validation results. Cached record
// slices are shared between results and must be treated as read-only.
type resultCache struct {
	mu      sync.Mutex
	max     int
	entries map[string][]rules.ErrorRecord
	order   []string
}

func newResultCache(max int) *resultCache {
	if max <= 0 {
		max = 16
	}
	return &resultCache{
		max:     max,
		entries: make(map[string][]rules.ErrorRecord),
	}
}

func (c *resultCache) get(key string) ([]rules.ErrorRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, ok := c.entries[key]
	return records, ok
}

func (c *resultCache) put(key string, records []rules.ErrorRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}
	for len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = records
	c.order = append(c.order, key)
}

// Len returns the number of cached results.
func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
