package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const pingAttempts = 3

// NewClient creates a Redis client for the snapshot stash and the
// idempotency store. The connection is pinged a few times before giving up.
func NewClient(ctx context.Context, redisURL string, logger zerolog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond

	ping := func() error {
		return client.Ping(ctx).Err()
	}

	notify := func(err error, next time.Duration) {
		logger.Warn().Err(err).Dur("retry_in", next).Str("addr", opts.Addr).Msg("redis ping failed")
	}

	err = backoff.RetryNotify(ping, backoff.WithContext(backoff.WithMaxRetries(policy, pingAttempts-1), ctx), notify)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("connected to redis")

	return client, nil
}
