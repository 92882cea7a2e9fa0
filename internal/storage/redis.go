package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/mohamadkhanafer/fitnessapp/internal/insights"
)

const snapshotKeyPrefix = "snapshot:"

// SnapshotCache keeps computed daily snapshots in Redis so repeated
// insight reads for the same day skip the database and the pipeline.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

func (c *SnapshotCache) Get(ctx context.Context, day string) (*insights.Snapshot, error) {
	data, err := c.client.Get(ctx, snapshotKeyPrefix+day).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snap insights.Snapshot
	if err := go_json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

func (c *SnapshotCache) Set(ctx context.Context, snap *insights.Snapshot) error {
	data, err := go_json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKeyPrefix+snap.Day, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot for a day, called after a sync
// lands new data for it.
func (c *SnapshotCache) Invalidate(ctx context.Context, day string) error {
	if err := c.client.Del(ctx, snapshotKeyPrefix+day).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot: %w", err)
	}
	return nil
}
