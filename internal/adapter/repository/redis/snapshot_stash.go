package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/chainsnap/internal/domain"
)

// SnapshotStash implements usecase.SnapshotStash using Redis.
type SnapshotStash struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSnapshotStash creates a new SnapshotStash. Stashed snapshots expire
// after ttl; zero keeps them until deleted.
func NewSnapshotStash(client *redis.Client, ttl time.Duration) *SnapshotStash {
	return &SnapshotStash{
		client: client,
		prefix: "snapshot:",
		ttl:    ttl,
	}
}

// Save stores a snapshot under its ID.
func (s *SnapshotStash) Save(ctx context.Context, snapshot *domain.StashedSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return s.client.Set(ctx, s.prefix+snapshot.ID, data, s.ttl).Err()
}

// Load retrieves a snapshot by ID.
func (s *SnapshotStash) Load(ctx context.Context, id string) (*domain.StashedSnapshot, error) {
	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}

	var snapshot domain.StashedSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", id, err)
	}
	if snapshot.Snapshot == nil {
		return nil, fmt.Errorf("snapshot %s has no data: %w", id, domain.ErrSnapshotNotFound)
	}
	return &snapshot, nil
}

// Delete removes a snapshot. Deleting an unknown ID reports ErrSnapshotNotFound.
func (s *SnapshotStash) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.prefix+id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSnapshotNotFound
	}
	return nil
}
