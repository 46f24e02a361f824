package nscache

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/mamcisaac/nscache/api"
	"github.com/mamcisaac/nscache/engine"
	"github.com/mamcisaac/nscache/eviction"
	"github.com/mamcisaac/nscache/store"
	"github.com/mamcisaac/nscache/types"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrEmptyKey is returned by writes with an empty key.
	ErrEmptyKey = errors.New("nscache: empty key")

	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("nscache: cache is closed")

	// ErrNilFactory is returned by GetOrSet when no factory was given.
	ErrNilFactory = errors.New("nscache: nil factory")
)

// Both the root cache and a namespace view satisfy the public contract.
var (
	_ api.Cache = (*Cache)(nil)
	_ api.Cache = (*View)(nil)
)

/*
Cache is the main cache implementation. It is the orchestrator that connects
the entry store, the eviction policy, the policy engine (expiration, default
TTL, observer) and the background sweeper.

One mutex guards the store, the eviction bookkeeping and the hit/miss
counters for the full duration of each operation. The eviction choice and
the sweep scan therefore never interleave with reads or writes, which is
what keeps the statistics consistent with the contents.
*/
type Cache struct {
	mu sync.Mutex

	store   store.EntryStore
	evictor eviction.Policy
	engine  *engine.CacheEngine

	maxSize int
	hits    int64
	misses  int64
	seq     uint64

	// sf deduplicates GetOrSet factory runs per composite key when
	// enabled. The zero group is ready to use.
	sf    singleflight.Group
	useSF bool

	// Sweeper goroutine ownership. Close cancels ctx and waits.
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	cleanupEvery time.Duration
	closed       bool
}

// New constructs a cache and starts its background sweeper. The returned
// cache owns a goroutine; call Close during shutdown to stop it.
func New(opts Options) *Cache {
	opts = opts.withDefaults()

	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		store:        store.New(),
		evictor:      eviction.NewPolicy(opts.Eviction),
		engine:       engine.NewCacheEngine(opts.Expiration, opts.Observer, opts.DefaultTTL),
		maxSize:      opts.MaxSize,
		useSF:        opts.SingleFlight,
		ctx:          ctx,
		cancel:       cancel,
		cleanupEvery: opts.CleanupInterval,
	}

	c.wg.Add(1)
	go c.sweepLoop()

	return c
}

/*
Close stops the background sweeper and releases the store. It blocks until
the sweeper has exited and is safe to call more than once. Writes after
Close fail with ErrClosed; reads simply miss.
*/
func (c *Cache) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.store.RemoveWhere(func(key string, _ *types.CacheEntry) bool {
		c.evictor.Remove(key)
		return true
	})
	cancel := c.cancel
	c.mu.Unlock()

	// Cancel outside the lock so shutdown never blocks a sweep that is
	// waiting for it.
	cancel()
	c.wg.Wait()
}

// Namespace returns a view of the cache scoped to ns. Views share the
// underlying storage and statistics; only the key prefix differs.
func (c *Cache) Namespace(ns string) *View {
	return &View{cache: c, ns: ns}
}

//
// ================= PUBLIC API (root scope) =================
//

// Set stores a key-value pair using the default TTL.
func (c *Cache) Set(key string, value any) error {
	return c.set("", key, value, 0)
}

// SetWithTTL stores a key-value pair with an explicit TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) error {
	return c.set("", key, value, ttl)
}

// Get retrieves the value for key. Absence is reported, never an error.
func (c *Cache) Get(key string) (any, bool) {
	return c.get("", key)
}

// GetOrSet returns the cached value or computes it with factory.
func (c *Cache) GetOrSet(ctx context.Context, key string, ttl time.Duration, factory types.Factory) (any, error) {
	return c.getOrSet(ctx, "", key, ttl, factory)
}

// Has reports whether a live entry exists, without touching the counters.
func (c *Cache) Has(key string) bool {
	return c.has("", key)
}

// Delete removes key, reporting whether something was removed.
func (c *Cache) Delete(key string) bool {
	return c.delete("", key)
}

// Clear removes every entry, namespaced ones included, and resets the
// hit/miss counters. It returns the number of entries removed.
func (c *Cache) Clear() int {
	return c.clear("")
}

// Touch restarts a live entry's expiry with a new TTL.
func (c *Cache) Touch(key string, ttl time.Duration) bool {
	return c.touch("", key, ttl)
}

// Keys returns the live keys matching the wildcard pattern.
func (c *Cache) Keys(pattern string) ([]string, error) {
	return c.keys("", pattern)
}

// SetMultiple stores the entries independently; see api.Cache.
func (c *Cache) SetMultiple(entries []types.BatchEntry) types.BatchResult {
	return c.setMultiple("", entries)
}

// GetMultiple retrieves the given keys, omitting absent ones.
func (c *Cache) GetMultiple(keys []string) map[string]any {
	return c.getMultiple("", keys)
}

//
// ================= CORE OPERATIONS =================
//

func (c *Cache) set(ns, key string, value any, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	ck := compositeKey(ns, key)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	// Make room first. At most one eviction per write, and only when the
	// write would actually grow the store.
	if _, exists := c.store.Find(ck); !exists && c.store.Len() >= c.maxSize {
		if victim := c.evictor.Evict(); victim != "" {
			c.store.Remove(victim)
			c.engine.Observer.Eviction(victim)
		}
	}

	c.seq++
	ent := &types.CacheEntry{
		Key:          key,
		Value:        value,
		TTL:          c.engine.TTLFor(ttl),
		CreatedAt:    now,
		LastAccessed: now,
		Seq:          c.seq,
	}
	c.store.Put(ck, ent)
	c.evictor.OnPut(ck)
	return nil
}

func (c *Cache) get(ns, key string) (any, bool) {
	ck := compositeKey(ns, key)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store.Find(ck)
	if ok && c.engine.IsExpired(ent, now) {
		c.removeLocked(ck)
		c.engine.Observer.Expire(ck)
		ok = false
	}
	if !ok {
		c.misses++
		c.engine.Observer.Miss(ck)
		return nil, false
	}

	c.hits++
	c.engine.OnRead(ent, now)
	c.evictor.OnGet(ck)
	c.engine.Observer.Hit(ck)
	return ent.Value, true
}

/*
getOrSet checks the cache, and on a miss computes the value with the
caller's factory.

The factory runs with no lock held; holding the mutex across an arbitrary
external call would stall every other cache operation behind it. The price
is that two concurrent misses on the same key may both run the factory and
the later write wins. With Options.SingleFlight the compute path is
deduplicated per composite key instead.
*/
func (c *Cache) getOrSet(ctx context.Context, ns, key string, ttl time.Duration, factory types.Factory) (any, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	if v, ok := c.get(ns, key); ok {
		return v, nil
	}

	compute := func() (any, error) {
		v, err := factory(ctx)
		if err != nil {
			// Propagate unchanged; nothing was stored.
			return nil, err
		}
		if err := c.set(ns, key, v, ttl); err != nil {
			return nil, err
		}
		return v, nil
	}

	if c.useSF {
		v, err, _ := c.sf.Do(compositeKey(ns, key), compute)
		return v, err
	}
	return compute()
}

func (c *Cache) has(ns, key string) bool {
	ck := compositeKey(ns, key)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store.Find(ck)
	if !ok {
		return false
	}
	if c.engine.IsExpired(ent, now) {
		c.removeLocked(ck)
		c.engine.Observer.Expire(ck)
		return false
	}
	return true
}

func (c *Cache) delete(ns, key string) bool {
	ck := compositeKey(ns, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(ck)
}

func (c *Cache) clear(ns string) int {
	c.mu.Lock()

	var removed int
	if ns == "" {
		removed = c.store.RemoveWhere(func(key string, _ *types.CacheEntry) bool {
			c.evictor.Remove(key)
			return true
		})
		c.hits, c.misses = 0, 0
	} else {
		prefix := ns + Separator
		removed = c.store.RemoveWhere(func(key string, _ *types.CacheEntry) bool {
			if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
				c.evictor.Remove(key)
				return true
			}
			return false
		})
	}
	c.mu.Unlock()

	c.engine.Observer.Clear(ns, removed)
	return removed
}

func (c *Cache) touch(ns, key string, ttl time.Duration) bool {
	ck := compositeKey(ns, key)
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.store.Find(ck)
	if !ok {
		return false
	}
	if c.engine.IsExpired(ent, now) {
		// Touch never resurrects a stale entry.
		c.removeLocked(ck)
		c.engine.Observer.Expire(ck)
		return false
	}

	ent.CreatedAt = now
	ent.TTL = c.engine.TTLFor(ttl)
	return true
}

func (c *Cache) keys(ns, pattern string) ([]string, error) {
	// The pattern is matched against composite keys, so the namespace is
	// joined in with the same codec as the keys themselves.
	re, err := compilePattern(compositeKey(ns, pattern))
	if err != nil {
		return nil, err
	}
	now := time.Now()

	c.mu.Lock()
	var out []string
	c.store.Range(func(key string, ent *types.CacheEntry) {
		if c.engine.IsExpired(ent, now) {
			return
		}
		if re.MatchString(key) {
			out = append(out, ent.Key)
		}
	})
	c.mu.Unlock()

	sort.Strings(out)
	return out, nil
}

// removeLocked deletes one entry and its eviction bookkeeping. Callers hold
// the mutex.
func (c *Cache) removeLocked(ck string) bool {
	if !c.store.Remove(ck) {
		return false
	}
	c.evictor.Remove(ck)
	return true
}

//
// ================= STATISTICS & REPORTING =================
//

// Len returns the number of stored entries, including stale entries the
// sweeper has not visited yet.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// Stats returns a snapshot of the counters plus an estimate of the memory
// held by live entries.
func (c *Cache) Stats() types.Stats {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	s := types.Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		Size:    c.store.Len(),
		MaxSize: c.maxSize,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = math.Round(float64(c.hits)/float64(total)*10000) / 100
	}
	c.store.Range(func(_ string, ent *types.CacheEntry) {
		if c.engine.IsExpired(ent, now) {
			return
		}
		s.MemoryBytes += estimateEntrySize(ent.Key, ent.Value)
	})
	return s
}

/*
TopEntries returns up to limit entries sorted descending by the given field.
Ties are broken by insertion order (earlier insertions first), so the result
is deterministic even when counts or timestamps are equal.
*/
func (c *Cache) TopEntries(sortBy types.SortField, limit int) []types.EntryInfo {
	if limit <= 0 {
		return nil
	}

	c.mu.Lock()
	ents := make([]*types.CacheEntry, 0, c.store.Len())
	c.store.Range(func(_ string, ent *types.CacheEntry) {
		ents = append(ents, ent)
	})

	sort.Slice(ents, func(i, j int) bool {
		a, b := ents[i], ents[j]
		switch sortBy {
		case types.SortByLastAccessed:
			if !a.LastAccessed.Equal(b.LastAccessed) {
				return a.LastAccessed.After(b.LastAccessed)
			}
		case types.SortByCreatedAt:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		default: // SortByAccessCount
			if a.AccessCount != b.AccessCount {
				return a.AccessCount > b.AccessCount
			}
		}
		return a.Seq < b.Seq
	})

	if limit > len(ents) {
		limit = len(ents)
	}
	out := make([]types.EntryInfo, limit)
	for i := 0; i < limit; i++ {
		out[i] = types.EntryInfo{
			Key:          ents[i].Key,
			AccessCount:  ents[i].AccessCount,
			LastAccessed: ents[i].LastAccessed,
			CreatedAt:    ents[i].CreatedAt,
		}
	}
	c.mu.Unlock()
	return out
}
