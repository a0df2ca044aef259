package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/activity-hub/student-activity-hub/internal/application/query"
)

// SummaryCache caches computed points summaries per student. It satisfies
// both query.SummaryCache and the invalidator the review command needs.
//
// Entries carry a TTL as a backstop, but the authoritative freshness signal
// is the explicit invalidation issued whenever one of the student's
// registrations is reviewed.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new SummaryCache.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SummaryCache{client: client, ttl: ttl}
}

func summaryKey(userID int64) string {
	return fmt.Sprintf("points:summary:%d", userID)
}

// Get returns the cached summary, or (nil, nil) on a miss.
func (c *SummaryCache) Get(ctx context.Context, userID int64) (*query.PointsSummary, error) {
	data, err := c.client.Get(ctx, summaryKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis: failed to load summary: %w", err)
	}

	var summary query.PointsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("redis: failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}

// Set stores a computed summary.
func (c *SummaryCache) Set(ctx context.Context, userID int64, summary *query.PointsSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("redis: failed to marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to store summary: %w", err)
	}
	return nil
}

// Invalidate drops a student's cached summary.
func (c *SummaryCache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, summaryKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis: failed to invalidate summary: %w", err)
	}
	return nil
}
