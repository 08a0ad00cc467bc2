// SPDX-License-Identifier: MIT

package engine

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// traceCache is an LRU of responses bounded both by entry count and by the
// summed cells of the traces it holds. A response larger than the whole
// budget is never stored.
type traceCache struct {
	lru    *lru.Cache[string, cacheEntry]
	budget int64
	cells  atomic.Int64
}

type cacheEntry struct {
	resp  any
	cells int64
}

func newTraceCache(entries, budget int) (*traceCache, error) {
	c := &traceCache{budget: int64(budget)}
	l, err := lru.NewWithEvict(entries, func(_ string, ent cacheEntry) {
		c.cells.Add(-ent.cells)
		cacheCells.Sub(float64(ent.cells))
	})
	if err != nil {
		return nil, err
	}
	c.lru = l
	return c, nil
}

func (c *traceCache) get(key string) (any, bool) {
	ent, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return ent.resp, true
}

// add stores resp unless key is already present, then evicts the least
// recently used entries until the budget holds again.
func (c *traceCache) add(key string, resp any, cells int) {
	n := int64(cells)
	if n > c.budget {
		return
	}
	if found, _ := c.lru.ContainsOrAdd(key, cacheEntry{resp: resp, cells: n}); found {
		return
	}
	c.cells.Add(n)
	cacheCells.Add(float64(n))
	for c.cells.Load() > c.budget {
		if _, _, ok := c.lru.RemoveOldest(); !ok {
			break
		}
	}
}

func (c *traceCache) usage() (entries, cells int) {
	return c.lru.Len(), int(c.cells.Load())
}
