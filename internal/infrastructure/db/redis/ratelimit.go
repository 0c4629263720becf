package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter provides admission control backed by Redis, letting
// multiple instances share one budget per client key.
// Key format: ratelimit:<client_key>
type FixedWindowLimiter struct {
	client *redis.Client
	window time.Duration
	max    int64
}

// NewFixedWindowLimiter creates a limiter allowing max requests per window.
func NewFixedWindowLimiter(client *redis.Client, window time.Duration, max int) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, window: window, max: int64(max)}
}

// Allow increments the caller's window counter and reports whether it is
// still within budget. The window key expires on its own; no sweep needed.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("admission check: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("admission window: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *FixedWindowLimiter) key(clientKey string) string {
	return fmt.Sprintf("ratelimit:%s", clientKey)
}
