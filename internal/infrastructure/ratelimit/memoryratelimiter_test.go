package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiterAllow(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("ip:1.2.3.4", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow("ip:1.2.3.4", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other keys are unaffected.
	allowed, err = limiter.Allow("ip:5.6.7.8", config)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiterReset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("login:user@example.com", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _ = limiter.Allow("login:user@example.com", config)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset("login:user@example.com"))

	allowed, _ = limiter.Allow("login:user@example.com", config)
	assert.True(t, allowed)
}

func TestMemoryRateLimiterGetRemaining(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	config := RateLimitConfig{RequestsPerMinute: 10}

	_, err := limiter.Allow("k", config)
	require.NoError(t, err)
	_, err = limiter.Allow("k", config)
	require.NoError(t, err)

	count, err := limiter.GetRemaining("k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
