package nscache

import (
	"context"
	"time"

	"github.com/mamcisaac/nscache/types"
)

/*
View is a namespace-scoped handle on a Cache. It applies its namespace to
every key before delegating, and is otherwise the same cache: storage,
capacity, statistics and the sweeper are all shared.

Views are cheap value-like handles; create them freely and do not bother
keeping them around.
*/
type View struct {
	cache *Cache
	ns    string
}

// Name returns the namespace this view is scoped to.
func (v *View) Name() string { return v.ns }

// Set stores a key-value pair in the namespace using the default TTL.
func (v *View) Set(key string, value any) error {
	return v.cache.set(v.ns, key, value, 0)
}

// SetWithTTL stores a key-value pair in the namespace with an explicit TTL.
func (v *View) SetWithTTL(key string, value any, ttl time.Duration) error {
	return v.cache.set(v.ns, key, value, ttl)
}

// Get retrieves the value for key within the namespace.
func (v *View) Get(key string) (any, bool) {
	return v.cache.get(v.ns, key)
}

// GetOrSet returns the cached value or computes it with factory.
func (v *View) GetOrSet(ctx context.Context, key string, ttl time.Duration, factory types.Factory) (any, error) {
	return v.cache.getOrSet(ctx, v.ns, key, ttl, factory)
}

// Has reports whether a live entry exists within the namespace.
func (v *View) Has(key string) bool {
	return v.cache.has(v.ns, key)
}

// Delete removes key from the namespace.
func (v *View) Delete(key string) bool {
	return v.cache.delete(v.ns, key)
}

// Clear removes only this namespace's entries and leaves the shared
// hit/miss counters alone. It returns the number of entries removed.
func (v *View) Clear() int {
	return v.cache.clear(v.ns)
}

// Touch restarts a live entry's expiry within the namespace.
func (v *View) Touch(key string, ttl time.Duration) bool {
	return v.cache.touch(v.ns, key, ttl)
}

// Keys returns the namespace's live keys matching the wildcard pattern,
// namespace prefix stripped.
func (v *View) Keys(pattern string) ([]string, error) {
	return v.cache.keys(v.ns, pattern)
}

// SetMultiple stores the entries independently within the namespace.
func (v *View) SetMultiple(entries []types.BatchEntry) types.BatchResult {
	return v.cache.setMultiple(v.ns, entries)
}

// GetMultiple retrieves the given keys from the namespace, omitting absent
// ones.
func (v *View) GetMultiple(keys []string) map[string]any {
	return v.cache.getMultiple(v.ns, keys)
}
