package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Offline clients resend whole sync batches on reconnect; 24h comfortably
// covers the retry horizon of a device that was offline for a day.
const dedupTTL = 24 * time.Hour

// DedupChecker provides idempotency checks for hydration sync events.
// Key format: intake:<user_id>:<amount_ml>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact event has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID string, amountML int, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, amountML, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID string, amountML int, ts time.Time) error {
	return d.client.Set(ctx, d.key(userID, amountML, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID string, amountML int, ts time.Time) string {
	return fmt.Sprintf("intake:%s:%d:%d", userID, amountML, ts.Unix())
}
