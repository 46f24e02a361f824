package store

import "github.com/mamcisaac/nscache/types"

/*
This file defines how entries are actually stored.

EntryStore is the interface the cache uses to keep entries. Keys are
composite keys, namespace prefix included. Implementations are NOT safe for
concurrent use; the cache owns a single mutex and serializes every call,
including the scans behind RemoveWhere and Range.
*/
type EntryStore interface {

	// Find retrieves an entry by composite key.
	Find(string) (*types.CacheEntry, bool)

	// Put inserts or replaces an entry.
	Put(string, *types.CacheEntry)

	// Remove deletes an entry, reporting whether it was present.
	Remove(string) bool

	// RemoveWhere deletes every entry the predicate selects and returns
	// how many were removed. The predicate may have side effects (the
	// cache uses it to keep eviction bookkeeping in step).
	RemoveWhere(func(key string, ent *types.CacheEntry) bool) int

	// Range calls fn for every stored entry, in no particular order.
	Range(fn func(key string, ent *types.CacheEntry))

	// Len returns how many entries are stored.
	Len() int
}

// mapStore is the plain map implementation of EntryStore.
type mapStore struct {
	entries map[string]*types.CacheEntry
}

// New creates an empty EntryStore.
func New() EntryStore {
	return &mapStore{entries: make(map[string]*types.CacheEntry)}
}

func (s *mapStore) Find(key string) (*types.CacheEntry, bool) {
	ent, ok := s.entries[key]
	return ent, ok
}

func (s *mapStore) Put(key string, ent *types.CacheEntry) {
	s.entries[key] = ent
}

func (s *mapStore) Remove(key string) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

// Deleting from a map while ranging over it is defined behavior in Go, so
// the scan runs in one pass.
func (s *mapStore) RemoveWhere(pred func(string, *types.CacheEntry) bool) int {
	removed := 0
	for k, ent := range s.entries {
		if pred(k, ent) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

func (s *mapStore) Range(fn func(string, *types.CacheEntry)) {
	for k, ent := range s.entries {
		fn(k, ent)
	}
}

func (s *mapStore) Len() int {
	return len(s.entries)
}
