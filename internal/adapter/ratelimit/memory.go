package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// idleTTL is how long an untouched bucket is kept before cleanup drops it.
const idleTTL = 10 * time.Minute

// MemoryLimiter is an in-process token bucket per key.
type MemoryLimiter struct {
	buckets    sync.Map // map[string]*bucket
	maxTokens  float64
	refillRate float64 // tokens per second
	stop       chan struct{}
	stopOnce   sync.Once
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewMemoryLimiter creates a limiter allowing perMinute events per key, with
// a background goroutine evicting idle buckets every cleanupInterval.
// Call Stop on shutdown.
func NewMemoryLimiter(perMinute int, cleanupInterval time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		maxTokens:  float64(perMinute),
		refillRate: float64(perMinute) / 60.0,
		stop:       make(chan struct{}),
	}
	go l.cleanup(cleanupInterval)
	return l
}

// Stop terminates the background cleanup goroutine. It is safe to call more
// than once.
func (l *MemoryLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Allow spends one token of userID's bucket. It never returns an error.
func (l *MemoryLimiter) Allow(_ context.Context, userID uuid.UUID) (bool, error) {
	return l.AllowKey(userID.String()), nil
}

// AllowKey spends one token of key's bucket.
func (l *MemoryLimiter) AllowKey(key string) bool {
	val, _ := l.buckets.LoadOrStore(key, &bucket{
		tokens:     l.maxTokens,
		lastRefill: time.Now(),
	})
	return val.(*bucket).allow(l.maxTokens, l.refillRate)
}

// PerMinute is the configured sustained rate.
func (l *MemoryLimiter) PerMinute() int {
	return int(l.maxTokens)
}

func (b *bucket) allow(maxTokens, refillRate float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * refillRate
	if b.tokens > maxTokens {
		b.tokens = maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (l *MemoryLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictIdle(time.Now())
		}
	}
}

func (l *MemoryLimiter) evictIdle(now time.Time) {
	l.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastRefill)
		b.mu.Unlock()
		if idle > idleTTL {
			l.buckets.Delete(key)
		}
		return true
	})
}
