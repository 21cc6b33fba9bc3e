// Package storage defines persistence contracts for the console query cache.
package storage

import (
	"context"
	"time"
)

// Entry is one cached backend response. Entries are derived data and may be
// dropped at any time.
type Entry struct {
	Key string
	// Scope groups keys of one resource shape, e.g. "project_employees".
	Scope string
	// EntityID is the employee or project the key is about, empty for lists.
	EntityID  string
	Payload   []byte
	Stale     bool
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Fresh reports whether the entry may be served at now.
func (e Entry) Fresh(now time.Time) bool {
	if e.Stale {
		return false
	}
	return e.ExpiresAt.IsZero() || now.Before(e.ExpiresAt)
}

// Store persists query-cache entries.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	// Generation returns the invalidation counter. Every MarkStale and
	// MarkScopeStale call advances it.
	Generation(ctx context.Context) (int64, error)
	// Put writes entry only while the counter still equals generation.
	// stored is false when an invalidation happened in between.
	Put(ctx context.Context, entry Entry, generation int64) (stored bool, err error)
	// MarkStale flags keys stale; unknown keys are ignored.
	MarkStale(ctx context.Context, keys ...string) error
	// MarkScopeStale flags every key of scope stale.
	MarkScopeStale(ctx context.Context, scope string) error
	// DeleteExpired removes stale entries and entries expired at now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	Close() error
}
