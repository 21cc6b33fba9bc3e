// Package cache is the read-through query cache behind console pages.
//
// Entries are JSON payloads keyed by backend resource (see Key). Mutations
// never write into the cache; they mark keys stale through Invalidate and
// the next read refetches from the backend.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/staffdesk/internal/services/console/storage"
)

const defaultTTL = 30 * time.Second

// Cache reads and invalidates cached backend responses.
type Cache struct {
	store storage.Store
	ttl   time.Duration
	now   func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long a fetched payload is served before refetching.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a cache over store. A nil store yields a pass-through cache.
func New(store storage.Store, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		ttl:   defaultTTL,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Fetch returns the cached value for key, or calls load and caches its result.
//
// Stale and expired entries are never served. Load errors are returned
// as-is and nothing is cached; storage errors are logged and degrade to a
// direct load. A load that overlaps an invalidation is returned but not
// cached, so the next read refetches.
func Fetch[T any](ctx context.Context, c *Cache, key Key, load func(context.Context) (T, error)) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c == nil || c.store == nil || !key.Valid() {
		return load(ctx)
	}

	if payload, ok := c.cachedPayload(ctx, key); ok {
		var cached T
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		log.Printf("cache decode %s failed, refetching", key)
	}

	gen, genErr := c.store.Generation(ctx)
	if genErr != nil {
		log.Printf("cache generation %s: %v", key, genErr)
	}
	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return value, nil
	}
	if genErr == nil {
		c.putPayload(ctx, key, payload, gen)
	}
	return value, nil
}

func (c *Cache) cachedPayload(ctx context.Context, key Key) ([]byte, bool) {
	entry, ok, err := c.store.Get(ctx, key.String())
	if err != nil {
		log.Printf("cache read %s: %v", key, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if !entry.Fresh(c.now()) {
		return nil, false
	}
	return entry.Payload, true
}

func (c *Cache) putPayload(ctx context.Context, key Key, payload []byte, generation int64) {
	now := c.now()
	stored, err := c.store.Put(ctx, storage.Entry{
		Key:       key.String(),
		Scope:     string(key.Scope),
		EntityID:  key.ID.String(),
		Payload:   payload,
		StoredAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}, generation)
	switch {
	case err != nil:
		log.Printf("cache write %s: %v", key, err)
	case !stored:
		log.Printf("cache write %s skipped: invalidated during load", key)
	}
}

// Peek decodes the payload stored for key when it is still fresh.
//
// Invalidation uses it to learn which related lists an entity appeared in.
// A stale or expired list may predate later assignments, so it is ignored.
func Peek[T any](ctx context.Context, c *Cache, key Key) (T, bool) {
	var value T
	if c == nil || c.store == nil || !key.Valid() {
		return value, false
	}
	entry, ok, err := c.store.Get(ctx, key.String())
	if err != nil || !ok || !entry.Fresh(c.now()) {
		return value, false
	}
	if err := json.Unmarshal(entry.Payload, &value); err != nil {
		return value, false
	}
	return value, true
}

// Invalidate marks every target stale.
func (c *Cache) Invalidate(ctx context.Context, targets ...Target) error {
	if c == nil || c.store == nil || len(targets) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var keys []string
	for _, target := range targets {
		if target.WholeScope {
			if err := c.store.MarkScopeStale(ctx, string(target.Scope)); err != nil {
				return fmt.Errorf("invalidate scope %s: %w", target.Scope, err)
			}
			continue
		}
		keys = append(keys, target.Key().String())
	}
	if err := c.store.MarkStale(ctx, keys...); err != nil {
		return fmt.Errorf("invalidate keys: %w", err)
	}
	return nil
}
