package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tubone24/eiga-miyou/pkg/cache"
)

// StartCacheSweep periodically drops expired scrape results, so the cache
// does not sit at capacity with dead entries between requests. Lookups
// already treat expired entries as misses; this is housekeeping only.
func StartCacheSweep(ctx context.Context, c cache.ResultCache, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.SweepExpired(ctx)
				log.Debug().Msg("scrape cache sweep completed")
			}
		}
	}()
}
