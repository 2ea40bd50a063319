package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

type limitWindow struct {
	duration time.Duration
	limit    int
}

// trackedWindows lists the window sizes a limiter maintains per key,
// largest last. Reset relies on this being the complete set.
var trackedWindows = []time.Duration{time.Minute, time.Hour, 24 * time.Hour}

// limitWindows pairs the tracked windows with the configured caps. A cap of
// zero or below disables that window.
func limitWindows(config RateLimitConfig) []limitWindow {
	return []limitWindow{
		{time.Minute, config.RequestsPerMinute},
		{time.Hour, config.RequestsPerHour},
		{24 * time.Hour, config.RequestsPerDay},
	}
}
