package bootstrap

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/jobtrail/jobtrail-backend/config"
	"github.com/jobtrail/jobtrail-backend/internal/cache"
)

// OpenStatsCache returns nil when redis is not configured or unreachable;
// stats are then computed on every request.
func OpenStatsCache(ctx context.Context, cfg config.RedisConfig) *cache.StatsCache {
	if !cfg.Enabled() {
		log.Info("redis not configured, stats cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		log.WithError(err).WithField("addr", cfg.Addr).Warn("redis unreachable, stats cache disabled")
		client.Close()
		return nil
	}

	return cache.NewStatsCache(client, cfg.StatsTTL)
}
