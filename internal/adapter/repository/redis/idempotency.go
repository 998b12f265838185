package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingMarker = "pending"

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:",
	}
}

// Claim reserves key for the caller. If the key already holds a completed
// response it is returned with claimed=false; a key still being processed by
// another request returns claimed=false and a nil response.
func (s *IdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (claimed bool, response []byte, err error) {
	fullKey := s.prefix + key

	set, err := s.client.SetNX(ctx, fullKey, pendingMarker, ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if set {
		return true, nil, nil
	}

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		// Expired between the two calls; let the caller retry.
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	if string(existing) == pendingMarker {
		return false, nil, nil
	}
	return false, existing, nil
}

// Complete stores the final response for a claimed key.
func (s *IdempotencyStore) Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}

// Release drops a claim so a failed request can be retried with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
