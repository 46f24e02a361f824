package nscache

import (
	"sync"

	"github.com/mamcisaac/nscache/types"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency bounds the fan-out of SetMultiple and GetMultiple. The
// batch has no all-or-nothing atomicity across keys; each key goes through
// the regular single-key path and fails or succeeds on its own.
const batchConcurrency = 8

func (c *Cache) setMultiple(ns string, entries []types.BatchEntry) types.BatchResult {
	g := new(errgroup.Group)
	g.SetLimit(batchConcurrency)

	var (
		mu  sync.Mutex
		res types.BatchResult
	)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			err := c.set(ns, e.Key, e.Value, e.TTL)

			mu.Lock()
			if err != nil {
				res.Failed = append(res.Failed, e.Key)
			} else {
				res.Successful++
			}
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return res
}

func (c *Cache) getMultiple(ns string, keys []string) map[string]any {
	g := new(errgroup.Group)
	g.SetLimit(batchConcurrency)

	var mu sync.Mutex
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		k := k
		g.Go(func() error {
			if v, ok := c.get(ns, k); ok {
				mu.Lock()
				out[k] = v
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()
	return out
}
