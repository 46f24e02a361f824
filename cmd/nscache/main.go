package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	nscache "github.com/mamcisaac/nscache"
	"github.com/mamcisaac/nscache/types"
)

// ================= OBSERVER =================

// Events counts diagnostic events emitted by the cache.
type Events struct {
	mu        sync.Mutex
	hits      int
	misses    int
	evictions int
	expired   int
	swept     int
}

func (e *Events) Hit(string)      { e.mu.Lock(); e.hits++; e.mu.Unlock() }
func (e *Events) Miss(string)     { e.mu.Lock(); e.misses++; e.mu.Unlock() }
func (e *Events) Eviction(string) { e.mu.Lock(); e.evictions++; e.mu.Unlock() }
func (e *Events) Expire(string)   { e.mu.Lock(); e.expired++; e.mu.Unlock() }
func (e *Events) Sweep(n int)     { e.mu.Lock(); e.swept += n; e.mu.Unlock() }
func (e *Events) Clear(ns string, n int) {
	fmt.Printf("EVENT  → clear ns=%q removed=%d\n", ns, n)
}

func (e *Events) Print() {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Println("\n==================== EVENTS ====================")
	fmt.Printf("HITS      : %d\n", e.hits)
	fmt.Printf("MISSES    : %d\n", e.misses)
	fmt.Printf("EVICTIONS : %d\n", e.evictions)
	fmt.Printf("EXPIRED   : %d\n", e.expired)
	fmt.Printf("SWEPT     : %d\n", e.swept)
}

// ================= MAIN =================

func main() {
	ctx := context.Background()

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("DEFAULT TTL     : 30s")
	fmt.Println("CAPACITY        : 20 keys")
	fmt.Println("SWEEP INTERVAL  : 500ms")

	events := &Events{}

	c := nscache.New(nscache.Options{
		DefaultTTL:      30 * time.Second,
		MaxSize:         20,
		CleanupInterval: 500 * time.Millisecond,
		Observer:        events,
		SingleFlight:    true,
	})
	defer c.Close()

	// ====================================================
	fmt.Println("\n==================== 1) MISS THEN HIT ====================")
	if _, ok := c.Get("a"); !ok {
		fmt.Println("CACHE  → GET a = absent")
	}
	c.Set("a", "alpha")
	v, _ := c.Get("a")
	fmt.Println("CACHE  → GET a =", v)

	// ====================================================
	fmt.Println("\n==================== 2) TTL EXPIRATION ====================")
	c.SetWithTTL("x", "temp-value", 300*time.Millisecond)
	fmt.Println("CACHE  → SET x (TTL = 300ms)")

	time.Sleep(600 * time.Millisecond)

	if _, ok := c.Get("x"); !ok {
		fmt.Println("CACHE  → GET x after TTL = absent")
	}

	// ====================================================
	fmt.Println("\n==================== 3) NAMESPACES ====================")
	users := c.Namespace("user")
	posts := c.Namespace("post")
	users.Set("1", "alice")
	users.Set("2", "bob")
	posts.Set("1", "hello world")

	keys, _ := users.Keys("*")
	fmt.Println("CACHE  → user keys =", keys)

	users.Clear()
	if _, ok := users.Get("1"); !ok {
		fmt.Println("CACHE  → user:1 after clear = absent")
	}
	if v, ok := posts.Get("1"); ok {
		fmt.Println("CACHE  → post:1 survives   =", v)
	}

	// ====================================================
	fmt.Println("\n==================== 4) GETORSET + SINGLEFLIGHT ====================")
	var calls int
	var mu sync.Mutex
	factory := func(ctx context.Context) (any, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		time.Sleep(50 * time.Millisecond) // simulate a slow backing store
		return "computed", nil
	}

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, _ := c.GetOrSet(ctx, "expensive", 0, factory)
			fmt.Printf("GOROUTINE-%d → GETORSET expensive = %v\n", id, val)
		}(i)
	}
	wg.Wait()
	fmt.Println("CACHE  → factory invocations =", calls)

	// ====================================================
	fmt.Println("\n==================== 5) BATCH + EVICTION ====================")
	entries := make([]types.BatchEntry, 0, 50)
	for i := 0; i < 50; i++ {
		entries = append(entries, types.BatchEntry{Key: fmt.Sprintf("k%d", i), Value: i})
	}
	res := c.SetMultiple(entries)
	fmt.Printf("CACHE  → batch stored=%d failed=%v\n", res.Successful, res.Failed)
	fmt.Println("CACHE  → size after batch =", c.Len())

	// ====================================================
	fmt.Println("\n==================== 6) STATS & TOP ENTRIES ====================")
	for i := 0; i < 3; i++ {
		c.Get("k49")
	}
	top := c.TopEntries(types.SortByAccessCount, 3)
	for _, e := range top {
		fmt.Printf("TOP    → key=%s accesses=%d\n", e.Key, e.AccessCount)
	}

	st := c.Stats()
	fmt.Printf("STATS  → hits=%d misses=%d rate=%.2f%% size=%d/%d mem≈%dB\n",
		st.Hits, st.Misses, st.HitRate, st.Size, st.MaxSize, st.MemoryBytes)

	// ====================================================
	events.Print()

	fmt.Println("\n==================== SHUTDOWN ====================")
	c.Close()
	fmt.Println("SYSTEM → cache closed cleanly")
}
