package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripplanner/internal/config"
	mem "tripplanner/pkg/memcache"
)

const (
	idleLimiterTTL = 15 * time.Minute
	sweepInterval  = 5 * time.Minute
)

var Module = fx.Provide(provideAuthLimiters)

// provideAuthLimiters builds the per-ip store behind the login and register routes and
// sweeps idle buckets while the app runs.
func provideAuthLimiters(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) mem.LimiterStore {
	store := mem.NewLimiters(cfg.AuthRateLimit, cfg.AuthRateBurst, idleLimiterTTL)

	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							log.Debug("swept idle rate limiters", zap.Int("count", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
	return store
}
