package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-key token bucket: burst requests at once, then one per window.
type RateLimiter struct {
	mutex       sync.Mutex
	limiters    map[string]*limiterEntry
	every       rate.Limit
	window      time.Duration
	burst       int
	lastCleanup time.Time
	now         func() time.Time
}

func NewRateLimiter(window time.Duration, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:    make(map[string]*limiterEntry),
		every:       rate.Every(window),
		window:      window,
		burst:       burst,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	rl.cleanupStaleEntries(now)

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// cleanupStaleEntries drops keys whose bucket has had time to refill completely.
func (rl *RateLimiter) cleanupStaleEntries(now time.Time) {
	idle := rl.window * time.Duration(rl.burst+1)
	if now.Sub(rl.lastCleanup) < idle {
		return
	}
	for key, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) >= idle {
			delete(rl.limiters, key)
		}
	}
	rl.lastCleanup = now
}
