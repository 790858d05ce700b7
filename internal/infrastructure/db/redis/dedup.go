package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker provides notification idempotency checks backed by Redis.
// Key format: notify:<application_id>:<status>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact notification event has already been
// processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, applicationID string, status domain.ApplicationStatus, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(applicationID, status, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, applicationID string, status domain.ApplicationStatus, ts time.Time) error {
	return d.client.Set(ctx, d.key(applicationID, status, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(applicationID string, status domain.ApplicationStatus, ts time.Time) string {
	return fmt.Sprintf("notify:%s:%s:%d", applicationID, status, ts.Unix())
}
