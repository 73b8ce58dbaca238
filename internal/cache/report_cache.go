package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"skillscope/internal/model"
)

// ReportCache keeps completed performance reports hot for the report endpoint.
// Mongo stays the source of truth; a miss here is never an error.
type ReportCache interface {
	Set(ctx context.Context, attemptID string, report model.PerformanceReport) error
	Get(ctx context.Context, attemptID string) (model.PerformanceReport, error)
	Delete(ctx context.Context, attemptID string) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &reportCache{client: client, ttl: ttl}
}

func (c *reportCache) key(attemptID string) string {
	return "report:" + attemptID
}

func (c *reportCache) Set(ctx context.Context, attemptID string, report model.PerformanceReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(attemptID), data, c.ttl).Err()
}

func (c *reportCache) Get(ctx context.Context, attemptID string) (model.PerformanceReport, error) {
	data, err := c.client.Get(ctx, c.key(attemptID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var report model.PerformanceReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return report, nil
}

func (c *reportCache) Delete(ctx context.Context, attemptID string) error {
	return c.client.Del(ctx, c.key(attemptID)).Err()
}
