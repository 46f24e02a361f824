package types

import "time"

// CacheEntry is intentionally mutable: Get updates the access fields and
// Touch rewrites CreatedAt and TTL in place. All mutation happens under the
// cache mutex.
type CacheEntry struct {
	// Key is the caller-supplied key without any namespace prefix.
	// It is kept here so reporting (Keys, TopEntries) can return keys
	// the way the caller wrote them.
	Key string

	// Value is an opaque payload. The cache never inspects it except to
	// estimate its size for Stats.
	Value any

	// TTL is how long the entry stays live, measured from CreatedAt.
	TTL time.Duration

	// CreatedAt is set on insertion and reset by Touch. Under the sliding
	// expiration strategy it is also reset on every read.
	CreatedAt time.Time

	// LastAccessed is updated on every successful Get. Eviction ordering
	// is derived from it.
	LastAccessed time.Time

	// AccessCount increases by one on every successful Get.
	AccessCount int64

	// Seq is a monotonically increasing insertion sequence. Sorted queries
	// use it as the deterministic tie-break.
	Seq uint64
}
