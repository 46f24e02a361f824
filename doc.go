/*
Package nscache implements a single-process, in-memory cache with per-entry
TTL expiration, LRU capacity eviction, namespaces, wildcard key queries,
batch operations, hit/miss statistics and a background sweep for stale
entries.

A Cache is an explicit object: construct it with New, pass it to whatever
needs it, and Close it on shutdown to stop the sweeper. There is no package
level instance.

Namespaces partition the key space through a scoped view:

	c := nscache.New(nscache.Options{})
	defer c.Close()

	users := c.Namespace("user")
	users.Set("42", profile)
	v, ok := users.Get("42")

Internally a namespaced key is stored as "namespace:key" by plain
concatenation. The separator is not escaped, so namespaces and keys
containing ":" can collide with each other; see Separator.

Every operation, including the eviction choice and the sweep scan, runs
under one mutex, so the cache is safe for concurrent use and its statistics
stay consistent with its contents. The only caller code that runs outside
the lock is the GetOrSet factory.
*/
package nscache
