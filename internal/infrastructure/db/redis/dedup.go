package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// FanoutDedup provides notification fan-out idempotency checks backed by
// Redis. Key format: notify:<kind>:<trigger_id>
type FanoutDedup struct {
	client *redis.Client
}

// NewFanoutDedup creates a FanoutDedup wrapping the given Redis client.
func NewFanoutDedup(client *redis.Client) *FanoutDedup {
	return &FanoutDedup{client: client}
}

// IsDuplicate reports whether this trigger has already fanned out.
func (d *FanoutDedup) IsDuplicate(ctx context.Context, kind, triggerID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(kind, triggerID)).Result()
	if err != nil {
		return false, fmt.Errorf("fanout dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this trigger has fanned out (expires after dedupTTL).
func (d *FanoutDedup) Mark(ctx context.Context, kind, triggerID string) error {
	return d.client.Set(ctx, d.key(kind, triggerID), "1", dedupTTL).Err()
}

func (d *FanoutDedup) key(kind, triggerID string) string {
	return fmt.Sprintf("notify:%s:%s", kind, triggerID)
}
