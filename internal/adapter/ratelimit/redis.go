// Package ratelimit limits edit submissions per user.
//
// RedisLimiter shares its counters across service instances. MemoryLimiter
// is the single-process fallback used when no Redis URL is configured.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "ratelimit:submit:"

// RedisLimiter is a fixed-window counter per user stored in Redis.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewRedisLimiter connects to redisURL and allows perMinute submissions per
// user per minute.
func NewRedisLimiter(ctx context.Context, redisURL string, perMinute int) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisLimiterWithClient(client, perMinute), nil
}

// NewRedisLimiterWithClient creates a limiter from an existing client.
func NewRedisLimiterWithClient(client *redis.Client, perMinute int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: defaultPrefix,
		limit:  int64(perMinute),
		window: time.Minute,
	}
}

// Allow counts one submission for userID and reports whether it is within
// the current window's budget.
func (l *RedisLimiter) Allow(ctx context.Context, userID uuid.UUID) (bool, error) {
	window := time.Now().UnixNano() / int64(l.window)
	key := l.prefix + userID.String() + ":" + strconv.FormatInt(window, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", userID, err)
	}

	return incr.Val() <= l.limit, nil
}

// Ping checks connectivity.
func (l *RedisLimiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
