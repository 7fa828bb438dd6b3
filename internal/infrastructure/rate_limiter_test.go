package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurstThenRefill(t *testing.T) {
	clock := &testClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(time.Minute, 2)
	rl.now = clock.Now
	rl.lastCleanup = clock.Now()

	assert.True(t, rl.Allow(testPhone))
	assert.True(t, rl.Allow(testPhone))
	assert.False(t, rl.Allow(testPhone))

	// other keys have their own bucket
	assert.True(t, rl.Allow("998907654321"))

	clock.Advance(time.Minute)
	assert.True(t, rl.Allow(testPhone))
	assert.False(t, rl.Allow(testPhone))
}

func TestRateLimiterDropsIdleKeys(t *testing.T) {
	clock := &testClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(time.Minute, 1)
	rl.now = clock.Now
	rl.lastCleanup = clock.Now()

	rl.Allow("a")
	rl.Allow("b")
	assert.Len(t, rl.limiters, 2)

	clock.Advance(10 * time.Minute)
	rl.Allow("c")
	assert.Len(t, rl.limiters, 1)
}
