package ratelimit_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jerrsapps1/SafetySync-V2-sub000/internal/ratelimit"
)

func TestLimiter_RejectsAboveMax(t *testing.T) {
	now := time.Now()
	window := 15 * time.Minute
	l := ratelimit.NewLimiterWithClock("auth", 10, window, func() time.Time { return now })

	for i := 1; i <= 10; i++ {
		allowed, _ := l.Allow("203.0.113.7")
		assert.True(t, allowed, "request %d should be allowed", i)
	}

	allowed, retryAfter := l.Allow("203.0.113.7")
	assert.False(t, allowed)
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, window)
}

func TestLimiter_WindowResets(t *testing.T) {
	now := time.Now()
	l := ratelimit.NewLimiterWithClock("auth", 2, time.Minute, func() time.Time { return now })

	l.Allow("ip")
	l.Allow("ip")
	allowed, _ := l.Allow("ip")
	assert.False(t, allowed)

	// Past the deadline the counter resets to 1.
	now = now.Add(time.Minute + time.Second)
	allowed, _ = l.Allow("ip")
	assert.True(t, allowed)

	allowed, _ = l.Allow("ip")
	assert.True(t, allowed)

	allowed, _ = l.Allow("ip")
	assert.False(t, allowed)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	now := time.Now()
	l := ratelimit.NewLimiterWithClock("admin", 1, time.Minute, func() time.Time { return now })

	allowed, _ := l.Allow("ip-a")
	assert.True(t, allowed)
	allowed, _ = l.Allow("ip-a")
	assert.False(t, allowed)

	allowed, _ = l.Allow("ip-b")
	assert.True(t, allowed)
}

func TestLimiter_EvictsExpiredEntries(t *testing.T) {
	now := time.Now()
	l := ratelimit.NewLimiterWithClock("auth", 5, time.Minute, func() time.Time { return now })

	for i := 0; i < 20; i++ {
		l.Allow(fmt.Sprintf("ip-%d", i))
	}
	assert.Equal(t, 20, l.Len())

	now = now.Add(2 * time.Minute)
	l.Allow("ip-0") // resets its own window, stays tracked

	l.EvictExpiredForTest()
	assert.Equal(t, 1, l.Len())
}
