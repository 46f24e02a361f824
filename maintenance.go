package nscache

import (
	"time"

	"github.com/mamcisaac/nscache/types"
)

/*
sweepLoop periodically scans the store and removes stale entries.

Lazy expiration on the read path only catches keys that are still being
asked for; keys written once and never read again would sit in memory until
eviction pressure reaches them. The sweep closes that gap. An entry may
therefore stay stale-but-present for up to one sweep interval, during which
the read path still refuses to serve it.
*/
func (c *Cache) sweepLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.cleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case now := <-ticker.C:
			c.sweep(now)
		}
	}
}

// sweep removes every entry that is stale at the given instant. The whole
// scan runs under the cache mutex, like any other operation.
func (c *Cache) sweep(now time.Time) int {
	c.mu.Lock()
	removed := c.store.RemoveWhere(func(key string, ent *types.CacheEntry) bool {
		if c.engine.IsExpired(ent, now) {
			c.evictor.Remove(key)
			return true
		}
		return false
	})
	c.mu.Unlock()

	if removed > 0 {
		c.engine.Observer.Sweep(removed)
	}
	return removed
}
