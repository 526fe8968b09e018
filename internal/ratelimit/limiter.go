package ratelimit

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const sweepInterval = 60 * time.Second

type entry struct {
	count    int
	windowAt time.Time // deadline of the current window
}

// Limiter is a fixed-window per-key counter. Each key (usually a client IP)
// gets at most max requests per window; the first request after the window
// deadline resets the counter. Expired entries are swept periodically so the
// map stays bounded.
type Limiter struct {
	name   string
	max    int
	window time.Duration

	mu      sync.Mutex
	entries map[string]*entry

	now    func() time.Time
	done   chan struct{}
	logger *zap.Logger
}

func NewLimiter(name string, max int, window time.Duration) *Limiter {
	l := &Limiter{
		name:    name,
		max:     max,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
		done:    make(chan struct{}),
		logger:  zap.L().Named("ratelimit." + name),
	}

	go l.sweep()

	return l
}

// NewLimiterWithClock builds a limiter without the background sweep, with a
// caller-controlled clock. Tests use this.
func NewLimiterWithClock(name string, max int, window time.Duration, now func() time.Time) *Limiter {
	return &Limiter{
		name:    name,
		max:     max,
		window:  window,
		entries: make(map[string]*entry),
		now:     now,
		done:    make(chan struct{}),
		logger:  zap.NewNop(),
	}
}

// Allow records one request for key. When the request is rejected, retryAfter
// says how long until the window resets.
func (l *Limiter) Allow(key string) (allowed bool, retryAfter time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.windowAt) {
		l.entries[key] = &entry{count: 1, windowAt: now.Add(l.window)}
		return true, 0
	}

	e.count++
	if e.count > l.max {
		return false, e.windowAt.Sub(now)
	}

	return true, 0
}

// Stop terminates the sweep goroutine.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.evictExpired()
		}
	}
}

func (l *Limiter) evictExpired() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	before := len(l.entries)
	for key, e := range l.entries {
		if now.After(e.windowAt) {
			delete(l.entries, key)
		}
	}

	if evicted := before - len(l.entries); evicted > 0 {
		l.logger.Debug("evicted expired entries", zap.Int("count", evicted))
	}
}

// Len reports the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
