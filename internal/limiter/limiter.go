// Package limiter implements fixed-window request rate limiting keyed by
// client. Each FixedWindow instance is one logical bucket with its own limit
// and window duration; the same client key counts independently per bucket.
package limiter

import (
	"context"
	"sync"
	"time"
)

// window is the per-key counter state.
type window struct {
	start time.Time
	count int
}

// FixedWindow counts requests per key inside recurring fixed intervals.
// The read-modify-write on a window is atomic under a single mutex, so two
// concurrent requests from one key can never both pass on a stale count.
type FixedWindow struct {
	limit    int
	duration time.Duration
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// NewFixedWindow builds a limiter allowing limit requests per duration.
func NewFixedWindow(limit int, duration time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:    limit,
		duration: duration,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// WithClock overrides the time source. Intended for tests.
func (l *FixedWindow) WithClock(now func() time.Time) *FixedWindow {
	l.now = now
	return l
}

// Allow records one request for key and reports whether it fits in the
// current window. The first request of a fresh window always passes.
func (l *FixedWindow) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.duration {
		l.windows[key] = &window{start: now, count: 1}
		l.pruneLocked(now)
		return true, nil
	}

	w.count++
	return w.count <= l.limit, nil
}

// pruneLocked drops expired windows so idle clients do not accumulate.
// Called with the mutex held, only on the window-reset path.
func (l *FixedWindow) pruneLocked(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.duration {
			delete(l.windows, key)
		}
	}
}
