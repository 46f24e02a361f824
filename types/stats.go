package types

import "time"

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	// Hits and Misses count Get outcomes since construction or the last
	// full Clear.
	Hits   int64
	Misses int64

	// HitRate is Hits / (Hits + Misses) as a percentage, rounded to two
	// decimals. It is 0 when no requests have been made.
	HitRate float64

	// Size is the number of stored entries, including stale entries the
	// sweeper has not visited yet.
	Size int

	// MaxSize is the configured capacity.
	MaxSize int

	// MemoryBytes is an estimate of the memory held by live entries.
	// It is diagnostic only: monotonic with payload size, not exact.
	MemoryBytes int64
}

// BatchEntry is one element of a SetMultiple request.
// A zero TTL means "use the configured default".
type BatchEntry struct {
	Key   string
	Value any
	TTL   time.Duration
}

// BatchResult reports the outcome of a SetMultiple call. Entries fail
// independently; Failed lists the keys that were not stored.
type BatchResult struct {
	Successful int
	Failed     []string
}

// SortField selects the ordering of TopEntries.
type SortField string

const (
	SortByAccessCount  SortField = "accessCount"
	SortByLastAccessed SortField = "lastAccessed"
	SortByCreatedAt    SortField = "createdAt"
)

// EntryInfo is a read-only projection of one entry, as returned by
// TopEntries.
type EntryInfo struct {
	Key          string
	AccessCount  int64
	LastAccessed time.Time
	CreatedAt    time.Time
}
