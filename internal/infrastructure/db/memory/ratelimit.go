package memory

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count int
	start time.Time
}

// FixedWindowLimiter is the in-process admission controller: a fixed-window
// counter per client key. Stale windows are reclaimed by the janitor sweep to
// keep the map from growing with one entry per client ever seen.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	size    time.Duration
	max     int
	windows map[string]*window
}

func NewFixedWindowLimiter(windowSize time.Duration, max int) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		size:    windowSize,
		max:     max,
		windows: make(map[string]*window),
	}
}

func (l *FixedWindowLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) > l.size {
		l.windows[key] = &window{count: 1, start: now}
		return true, nil
	}
	if w.count >= l.max {
		return false, nil
	}
	w.count++
	return true, nil
}

// Janitor periodically drops windows that have lapsed, until ctx is cancelled.
func (l *FixedWindowLimiter) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.sweep(time.Now())
		}
	}
}

func (l *FixedWindowLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		if now.Sub(w.start) > l.size {
			delete(l.windows, key)
		}
	}
}
