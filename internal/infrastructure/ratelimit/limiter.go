// Package ratelimit provides a per-client token bucket limiter.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/skyway/travel-booking-system/internal/infrastructure/timeutil"
)

// clientBucket pairs a token bucket with the time of its last use.
type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter hands out one token bucket per client key. Buckets are
// created on first use and evicted by PurgeIdle once a client goes quiet.
type ClientLimiter struct {
	mu      sync.RWMutex
	clients map[string]*clientBucket
	rate    rate.Limit
	burst   int
	clock   timeutil.Clock
}

// NewClientLimiter creates a ClientLimiter allowing r events per second with
// the given burst per client.
func NewClientLimiter(r float64, burst int) *ClientLimiter {
	return NewClientLimiterWithClock(r, burst, timeutil.NewRealClock())
}

// NewClientLimiterWithClock creates a ClientLimiter on an explicit clock.
func NewClientLimiterWithClock(r float64, burst int, clock timeutil.Clock) *ClientLimiter {
	return &ClientLimiter{
		clients: make(map[string]*clientBucket),
		rate:    rate.Limit(r),
		burst:   burst,
		clock:   clock,
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *ClientLimiter) Allow(key string) bool {
	return l.bucketFor(key).Allow()
}

// bucketFor returns the client's bucket, creating it if needed, and marks it
// as seen. The read path stays on the shared lock; creation re-checks under
// the write lock.
func (l *ClientLimiter) bucketFor(key string) *rate.Limiter {
	now := l.clock.Now()

	l.mu.RLock()
	bucket, ok := l.clients[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		bucket.lastSeen = now
		l.mu.Unlock()
		return bucket.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if bucket, ok = l.clients[key]; ok {
		bucket.lastSeen = now
		return bucket.limiter
	}

	bucket = &clientBucket{
		limiter:  rate.NewLimiter(l.rate, l.burst),
		lastSeen: now,
	}
	l.clients[key] = bucket
	return bucket.limiter
}

// PurgeIdle drops buckets that have not been used within maxIdle and returns
// how many were removed. An evicted client that returns simply gets a fresh
// bucket.
func (l *ClientLimiter) PurgeIdle(maxIdle time.Duration) int {
	cutoff := l.clock.Now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, bucket := range l.clients {
		if bucket.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.clients)
}
