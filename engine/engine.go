package engine

import (
	"time"

	"github.com/mamcisaac/nscache/expiration"
	"github.com/mamcisaac/nscache/types"
)

/*
CacheEngine is the policy layer of the cache. It is responsible for the
behavior of entries, not for storage.

It decides:
- when an entry is stale
- which TTL applies when the caller did not give one
- what bookkeeping happens on reads and writes
- where diagnostic events go

It does NOT:
- store data
- handle locking
- decide eviction order
*/
type CacheEngine struct {

	// Expiration is the staleness rule applied to every entry.
	Expiration expiration.Strategy

	// Observer receives diagnostic events. Never nil; the constructor
	// substitutes a no-op implementation.
	Observer types.Observer

	// DefaultTTL applies when a write does not carry its own TTL.
	DefaultTTL time.Duration
}

// NewCacheEngine creates a CacheEngine, normalizing nil collaborators so the
// rest of the codebase never needs defensive checks.
func NewCacheEngine(exp expiration.Strategy, obs types.Observer, defaultTTL time.Duration) *CacheEngine {
	if exp == nil {
		exp = expiration.ExpireAfterWrite{}
	}
	if obs == nil {
		obs = types.NoopObserver{}
	}
	return &CacheEngine{
		Expiration: exp,
		Observer:   obs,
		DefaultTTL: defaultTTL,
	}
}

// TTLFor resolves the effective TTL for a write. Non-positive means the
// caller omitted it.
func (e *CacheEngine) TTLFor(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return e.DefaultTTL
	}
	return ttl
}

// IsExpired checks whether an entry is stale, delegating to the configured
// strategy.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return e.Expiration.IsExpired(ent, now)
}

/*
OnRead is called for every successful Get. It performs the read-side
bookkeeping that the entry contract requires:

- LastAccessed moves to now (eviction ordering feeds on this)
- AccessCount goes up by one
- the expiration strategy gets a chance to slide the expiry window

Has deliberately does not go through here: existence checks leave the access
bookkeeping alone.
*/
func (e *CacheEngine) OnRead(ent *types.CacheEntry, now time.Time) {
	ent.LastAccessed = now
	ent.AccessCount++
	e.Expiration.OnAccess(ent, now)
}
