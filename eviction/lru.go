// This file implements LRU eviction.

package eviction

import "container/list"

/*
lru tracks recency with a map into a doubly-linked list. The front of the
list is the most recently used key, the back the least recently used one.

Because recency is an exact list order, eviction is deterministic even when
several keys were last touched within the same clock tick: among keys that
were never read, the earliest inserted is evicted first.
*/
type lru struct {
	// elems maps cache keys to their list nodes, so moves are O(1).
	elems map[string]*list.Element

	// order holds the keys, front = most recently used.
	order *list.List
}

func newLRU() *lru {
	return &lru{
		elems: make(map[string]*list.Element),
		order: list.New(),
	}
}

// OnGet marks the key as most recently used.
func (l *lru) OnGet(k string) {
	if el, ok := l.elems[k]; ok {
		l.order.MoveToFront(el)
	}
}

// OnPut marks the key as most recently used, inserting it if it is new.
// Overwrites recreate the entry, so they count as a fresh use.
func (l *lru) OnPut(k string) {
	if el, ok := l.elems[k]; ok {
		l.order.MoveToFront(el)
		return
	}
	l.elems[k] = l.order.PushFront(k)
}

// Evict returns the least recently used key, which is always at the back of
// the list.
func (l *lru) Evict() string {
	el := l.order.Back()
	if el == nil {
		return ""
	}
	k := el.Value.(string)
	l.order.Remove(el)
	delete(l.elems, k)
	return k
}

// Remove drops the key from the recency order without evicting it.
func (l *lru) Remove(k string) {
	if el, ok := l.elems[k]; ok {
		l.order.Remove(el)
		delete(l.elems, k)
	}
}
