package types

import "context"

/*
Factory is the compute-if-absent contract between the cache and the caller.

GetOrSet calls it when the key is not cached:

 1. Cache checks memory, key not found
 2. Cache calls the factory (outside its own lock)
 3. Factory produces the value, typically from a database or an API
 4. Cache stores the result and returns it

The cache treats the factory as an opaque producer. A factory error is
propagated to the caller unchanged, nothing is stored, and the cache does not
retry. Timeout and cancellation behavior belong to the factory itself through
the context it receives.
*/
type Factory func(ctx context.Context) (any, error)
