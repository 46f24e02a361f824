// This file defines how cache entries go stale over time.

package expiration

import (
	"time"

	"github.com/mamcisaac/nscache/types"
)

/*
Strategy is the interface that all expiration rules must follow. Expiration
is kept out of the cache core so the staleness rule can be swapped without
touching storage or eviction.

Strategies are pure computations over an entry; the cache serializes all
calls behind its mutex.
*/
type Strategy interface {

	// IsExpired reports whether the entry is stale at the given instant.
	IsExpired(*types.CacheEntry, time.Time) bool

	// OnAccess is called whenever an entry is read successfully.
	OnAccess(*types.CacheEntry, time.Time)
}
