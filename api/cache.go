package api

import (
	"context"
	"time"

	"github.com/mamcisaac/nscache/types"
)

/*
Cache defines the PUBLIC API of the cache, shared by the root cache and by
namespace views. It is a contract that guarantees certain behaviors without
exposing internals; storage, eviction, expiration, statistics and the
background sweeper all hide behind it.
*/
type Cache interface {

	/*
		Set stores a key-value pair using the configured default TTL.

		BEHAVIOR:
		---------
		- Overwrites an existing entry completely; the new entry starts
		  with a zero access count
		- May evict the least recently used entry first when the cache
		  is at capacity

		An empty key is rejected with ErrEmptyKey.
	*/
	Set(key string, value any) error

	// SetWithTTL stores a key-value pair with an explicit time-to-live.
	// After TTL elapses the key is stale: the read path discards it
	// lazily and the background sweeper purges it eventually.
	SetWithTTL(key string, value any, ttl time.Duration) error

	/*
		Get retrieves the value for a key.

		BEHAVIOR:
		---------
		1. Key exists and is live: the value is returned, the hit
		   counter and the entry's access bookkeeping are updated.
		2. Key is absent or stale: the miss counter is updated and the
		   second return value is false. A stale entry is deleted as a
		   side effect.

		Absence is not an error.
	*/
	Get(key string) (any, bool)

	/*
		GetOrSet returns the cached value, or computes and stores it via
		the factory when absent.

		The factory runs OUTSIDE the cache lock, so two concurrent calls
		for the same missing key may both invoke it (last write wins)
		unless single-flight deduplication was enabled at construction.
		A factory error is returned unchanged and nothing is stored.

		A non-positive ttl means "use the configured default".
	*/
	GetOrSet(ctx context.Context, key string, ttl time.Duration, factory types.Factory) (any, error)

	// Has reports whether a live entry exists for the key. Like Get it
	// discards a stale entry it runs into, but it does not touch the
	// hit/miss counters or the entry's access bookkeeping.
	Has(key string) bool

	// Delete removes the key, reporting whether something was removed.
	// Deleting an absent key is safe.
	Delete(key string) bool

	/*
		Clear wipes the scope it is called on and returns how many
		entries were removed.

		On the root cache it removes everything, namespaced entries
		included, and resets the hit/miss counters. On a namespace view
		it removes only that namespace's entries and leaves the counters
		alone.
	*/
	Clear() int

	// Touch restarts a live entry's expiry: CreatedAt becomes now and
	// the TTL is replaced with ttl (non-positive means the default).
	// It returns false for an absent or stale key and never resurrects
	// an entry; a stale one is deleted instead.
	Touch(key string, ttl time.Duration) bool

	/*
		Keys returns the keys of live entries matching the wildcard
		pattern, namespace prefix stripped, in lexical order.

		The pattern grammar is `*` (any run of characters) and `?`
		(exactly one character); every other character is literal.
	*/
	Keys(pattern string) ([]string, error)

	// SetMultiple stores the entries independently. One entry failing
	// (for example an empty key) does not block the others; failed keys
	// are listed in the result.
	SetMultiple(entries []types.BatchEntry) types.BatchResult

	// GetMultiple retrieves the given keys, omitting absent or stale
	// ones from the result map.
	GetMultiple(keys []string) map[string]any
}
