package nscache

import (
	"time"

	"github.com/mamcisaac/nscache/eviction"
	"github.com/mamcisaac/nscache/expiration"
	"github.com/mamcisaac/nscache/types"
)

// Defaults applied by New when an option is zero or non-positive.
const (
	DefaultTTL             = 5 * time.Minute
	DefaultMaxSize         = 1024
	DefaultCleanupInterval = time.Minute
)

/*
Options configures a Cache. The zero value is usable: New normalizes every
unset field to a sensible default, so callers only spell out what they care
about.
*/
type Options struct {

	// DefaultTTL applies to writes that do not carry their own TTL.
	DefaultTTL time.Duration

	// MaxSize is the entry count ceiling. Reaching it triggers one
	// eviction per write. Non-positive values fall back to
	// DefaultMaxSize; there is no unbounded mode.
	MaxSize int

	// CleanupInterval is the period of the background sweep that purges
	// stale entries outside the read path.
	CleanupInterval time.Duration

	// Eviction selects the eviction strategy. Defaults to LRU, which is
	// the strategy the documented capacity behavior is stated for.
	Eviction eviction.PolicyType

	// Expiration selects the staleness rule. Defaults to
	// ExpireAfterWrite.
	Expiration expiration.Strategy

	// Observer receives diagnostic events (hits, misses, evictions,
	// sweeps, clears). Defaults to a no-op.
	Observer types.Observer

	// SingleFlight deduplicates concurrent GetOrSet factory runs per
	// key. Off by default: without it two concurrent misses on the same
	// key may both invoke the factory, and the last write wins.
	SingleFlight bool
}

func (o Options) withDefaults() Options {
	if o.DefaultTTL <= 0 {
		o.DefaultTTL = DefaultTTL
	}
	if o.MaxSize <= 0 {
		o.MaxSize = DefaultMaxSize
	}
	if o.CleanupInterval <= 0 {
		o.CleanupInterval = DefaultCleanupInterval
	}
	if o.Eviction == "" {
		o.Eviction = eviction.LRU
	}
	if o.Expiration == nil {
		o.Expiration = expiration.ExpireAfterWrite{}
	}
	if o.Observer == nil {
		o.Observer = types.NoopObserver{}
	}
	return o
}
