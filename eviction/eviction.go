package eviction

/*
This file defines how the cache decides what to remove when it runs out of
space.

Policy is the interface that all eviction strategies must follow. The cache
does not care how a strategy orders keys internally; it only reports reads
and writes and asks for a victim when it is full.

Policies are not safe for concurrent use on their own. The cache serializes
every call behind its mutex.
*/
type Policy interface {

	// OnGet is called whenever a key is read from the cache.
	//
	// Recency-based strategies care about reads. FIFO ignores this.
	OnGet(string)

	// OnPut is called whenever a key is written to the cache, both for
	// new keys and for overwrites. An overwrite recreates the entry, so
	// recency-based strategies treat it as a fresh use.
	OnPut(string)

	// Remove is called when a key leaves the cache for any reason other
	// than eviction (explicit delete, expiration, clear), so the policy
	// can drop its bookkeeping for that key.
	Remove(string)

	// Evict is called when the cache is full and needs space. It returns
	// the key that should go, or "" when nothing is tracked. The cache
	// performs the actual removal from storage.
	Evict() string
}

// PolicyType is a simple identifier for the supported eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used) evicts the key that has not been accessed
	// for the longest time. This is the default and the strategy the
	// capacity guarantees of the cache are stated for.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used) evicts the key with the fewest
	// accesses.
	LFU PolicyType = "LFU"

	// FIFO (First In First Out) evicts the oldest inserted key,
	// regardless of access.
	FIFO PolicyType = "FIFO"
)

// NewPolicy creates the eviction policy for the given type.
func NewPolicy(t PolicyType) Policy {
	switch t {
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	case FIFO:
		return newFIFO()
	default:
		panic("unknown eviction policy")
	}
}
