package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisOpTimeout bounds every Redis round trip so a stalled Redis cannot
// hang request handling.
const redisOpTimeout = 500 * time.Millisecond

const redisKeyPrefix = "giftex:ratelimit"

// RedisRateLimiter is a sliding-window limiter backed by Redis sorted sets,
// one set per key and window size. Scores are request timestamps in
// milliseconds, so entries age out by score range.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	now := time.Now()

	// Check every window before recording the hit, so a request denied by
	// the hour cap does not burn minute-cap quota.
	counts := make([]*redis.IntCmd, 0, len(trackedWindows))
	pipe := l.client.Pipeline()
	for _, w := range limitWindows(config) {
		setKey := l.setKey(key, w.duration)
		cutoff := now.Add(-w.duration).UnixMilli()
		pipe.ZRemRangeByScore(ctx, setKey, "0", strconv.FormatInt(cutoff, 10))
		counts = append(counts, pipe.ZCard(ctx, setKey))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit window check: %w", err)
	}

	for i, w := range limitWindows(config) {
		if w.limit > 0 && counts[i].Val() >= int64(w.limit) {
			return false, nil
		}
	}

	stamp := now.UnixMilli()
	record := l.client.Pipeline()
	for _, w := range limitWindows(config) {
		if w.limit <= 0 {
			continue
		}
		setKey := l.setKey(key, w.duration)
		record.ZAdd(ctx, setKey, redis.Z{Score: float64(stamp), Member: stamp})
		// Keep the key a little past the window so late reads still see it.
		record.Expire(ctx, setKey, w.duration+time.Minute)
	}
	if _, err := record.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit record hit: %w", err)
	}

	return true, nil
}

func (l *RedisRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	cutoff := time.Now().Add(-window).UnixMilli()
	count, err := l.client.ZCount(ctx, l.setKey(key, window),
		strconv.FormatInt(cutoff, 10), "+inf").Result()
	if err != nil {
		return 0, fmt.Errorf("rate limit count: %w", err)
	}

	return count, nil
}

// Reset drops the key from every tracked window. The window set is fixed,
// so the keys are deterministic and no SCAN is needed.
func (l *RedisRateLimiter) Reset(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	keys := make([]string, 0, len(trackedWindows))
	for _, window := range trackedWindows {
		keys = append(keys, l.setKey(key, window))
	}

	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) setKey(key string, window time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, key, window)
}
