package cache

import (
	"context"
	"log"
	"time"

	"github.com/louisbranch/staffdesk/internal/platform/timeouts"
)

// Sweep removes stale and expired rows once.
func (c *Cache) Sweep(ctx context.Context) (int64, error) {
	if c == nil || c.store == nil {
		return 0, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return c.store.DeleteExpired(ctx, c.now())
}

// StartSweeper runs Sweep on interval until the returned cancel is called.
// The done channel closes once the loop has exited.
func (c *Cache) StartSweeper(interval time.Duration) (context.CancelFunc, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	if c == nil || c.store == nil {
		close(done)
		return cancel, done
	}
	if interval <= 0 {
		interval = timeouts.CacheSweep
	}
	go func() {
		defer close(done)
		c.runSweepLoop(ctx, interval)
	}()
	return cancel, done
}

func (c *Cache) runSweepLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.Sweep(ctx); err != nil {
				log.Printf("cache sweep failed: %v", err)
			}
		}
	}
}
