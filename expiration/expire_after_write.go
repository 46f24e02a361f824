package expiration

import (
	"time"

	"github.com/mamcisaac/nscache/types"
)

/*
ExpireAfterWrite is the default strategy: an entry is live for TTL after it
was written (or touched), no matter how often it is read.

An entry is stale once now - CreatedAt exceeds its TTL. Reads never move the
expiry, so repeated Get calls on the same key leave CreatedAt and TTL
untouched and the key still dies on schedule.
*/
type ExpireAfterWrite struct{}

func (ExpireAfterWrite) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return now.Sub(ent.CreatedAt) > ent.TTL
}

// OnAccess does nothing. Only writes and Touch move the expiry.
func (ExpireAfterWrite) OnAccess(*types.CacheEntry, time.Time) {}
