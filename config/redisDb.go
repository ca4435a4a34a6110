package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ConnectRedisWithRetry pings redis with exponential backoff until it
// answers or ctx is done.
func ConnectRedisWithRetry(ctx context.Context, cfg RedisConfig, logg *logrus.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       0,
		PoolSize: 100,
	})

	var attempt int
	for {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			logg.WithFields(logrus.Fields{"field": "redis", "attempt": attempt}).Info("connected to redis")
			if cfg.FlushOnStart {
				if err := rdb.FlushDB(ctx).Err(); err != nil {
					return nil, err
				}
			}
			return rdb, nil
		}

		sleep := backoff(attempt)
		logg.WithFields(logrus.Fields{
			"field":   "redis",
			"attempt": attempt,
		}).Warn("failed to connect redis; retrying in " + sleep.String() + ": " + err.Error())
		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
}
