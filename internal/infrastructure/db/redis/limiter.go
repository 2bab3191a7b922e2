package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript counts a request inside the current fixed window.
// KEYS[1] = window key
// ARGV[1] = window duration in milliseconds
// The counter's TTL doubles as the window boundary: the first INCR of a
// fresh window sets the expiry, and the key vanishing resets the count.
// Running as a script keeps the read-modify-write atomic across instances.
const fixedWindowScript = `
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`

// FixedWindowLimiter is a Redis-backed fixed-window rate limiter. It mirrors
// the in-memory limiter's semantics but shares windows across processes.
type FixedWindowLimiter struct {
	client *redis.Client
	bucket string
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter builds a limiter for one bucket. Keys are namespaced
// as ratelimit:<bucket>:<client key>.
func NewFixedWindowLimiter(client *redis.Client, bucket string, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{client: client, bucket: bucket, limit: limit, window: window}
}

// Allow records one request for key and reports whether it fits in the
// current window.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Eval(ctx, fixedWindowScript, []string{l.key(key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	return count <= int64(l.limit), nil
}

func (l *FixedWindowLimiter) key(clientKey string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.bucket, clientKey)
}
