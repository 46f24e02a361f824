package types

// This file defines how the cache reports what it is doing.

/*
Observer is the diagnostic collaborator of the cache. Each method represents
one event in the cache lifecycle, and the cache calls it synchronously while
the event happens.

Observer calls are fire-and-forget: the cache ignores whatever the observer
does and an observer can never fail a cache operation. Because the cache may
invoke an observer while holding its internal mutex, observer implementations
MUST NOT call back into the cache.
*/
type Observer interface {

	// Hit is called when Get finds a live entry. The argument is the
	// composite key, namespace prefix included.
	Hit(key string)

	// Miss is called when Get finds nothing, including the case where a
	// stale entry was just discarded.
	Miss(key string)

	// Eviction is called when an entry is removed to make room for a new
	// one.
	Eviction(key string)

	// Expire is called when a stale entry is discarded on the read path
	// (Get, Has or Touch).
	Expire(key string)

	// Sweep is called after each background sweep that removed at least
	// one stale entry.
	Sweep(removed int)

	// Clear is called after Clear with the namespace that was wiped.
	// A full clear reports the empty namespace.
	Clear(namespace string, removed int)
}

/*
NoopObserver is a "do nothing" implementation of Observer.

The constructor falls back to it when no observer is configured, so the rest
of the codebase never needs nil checks before reporting an event.
*/
type NoopObserver struct{}

func (NoopObserver) Hit(string)        {}
func (NoopObserver) Miss(string)       {}
func (NoopObserver) Eviction(string)   {}
func (NoopObserver) Expire(string)     {}
func (NoopObserver) Sweep(int)         {}
func (NoopObserver) Clear(string, int) {}
