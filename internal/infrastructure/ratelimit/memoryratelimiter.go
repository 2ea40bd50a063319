package ratelimit

import (
	"sync"
	"time"
)

// MemoryRateLimiter is a sliding-window limiter for single-instance
// deployments where Redis is disabled.
type MemoryRateLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &MemoryRateLimiter{
		entries: make(map[string][]time.Time),
	}
}

func (l *MemoryRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	hits := l.prune(key, now)

	for _, window := range limitWindows(config) {
		if window.limit <= 0 {
			continue
		}
		cutoff := now.Add(-window.duration)
		count := 0
		for _, hit := range hits {
			if hit.After(cutoff) {
				count++
			}
		}
		if count >= window.limit {
			return false, nil
		}
	}

	l.entries[key] = append(hits, now)
	return true, nil
}

func (l *MemoryRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	var count int64
	for _, hit := range l.prune(key, now) {
		if hit.After(cutoff) {
			count++
		}
	}
	return count, nil
}

func (l *MemoryRateLimiter) Reset(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	return nil
}

// prune drops hits older than the largest tracked window. Caller holds the
// lock.
func (l *MemoryRateLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-24 * time.Hour)
	hits := l.entries[key]
	kept := hits[:0]
	for _, hit := range hits {
		if hit.After(cutoff) {
			kept = append(kept, hit)
		}
	}
	l.entries[key] = kept
	return kept
}
