package ports

import "context"

// RateLimiter bounds request counts per client key. Each instance owns one
// logical bucket (its own limit and window); buckets for the same client key
// are independent of each other.
type RateLimiter interface {
	// Allow records one request for key and reports whether it fits inside
	// the current window. A denied request still counts against the window.
	Allow(ctx context.Context, key string) (bool, error)
}
