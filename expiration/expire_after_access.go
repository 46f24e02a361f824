package expiration

import (
	"time"

	"github.com/mamcisaac/nscache/types"
)

/*
ExpireAfterAccess implements a sliding TTL. Every successful read restarts
the entry's expiry window, so data stays alive as long as it keeps getting
used and dies TTL after the last use.

Note that under this strategy a read rewrites CreatedAt. Callers that rely
on CreatedAt staying fixed after insertion should use ExpireAfterWrite, the
default.
*/
type ExpireAfterAccess struct{}

func (ExpireAfterAccess) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return now.Sub(ent.CreatedAt) > ent.TTL
}

// OnAccess restarts the expiry window from now.
func (ExpireAfterAccess) OnAccess(ent *types.CacheEntry, now time.Time) {
	ent.CreatedAt = now
}
