package isdayoff

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notecal/internal/core/domain"
)

func TestNewRateLimiter_Defaults(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})

	require.NotNil(t, r)
	assert.InDelta(t, DefaultRateLimit.RequestsPerSecond, float64(r.limiter.Limit()), 1e-9)
	assert.Equal(t, DefaultRateLimit.BurstSize, r.limiter.Burst())
}

func TestRateLimiter_Wait_Burst(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, r.Wait(ctx))
	require.NoError(t, r.Wait(ctx))
	assert.Error(t, r.Wait(ctx), "third token would exceed the deadline")
}

func TestRateLimiter_Wait(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 1})

	require.NoError(t, r.Wait(context.Background()))
	require.NoError(t, r.Wait(context.Background()))
}

func TestRateLimiter_RecordRateLimit(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})

	r.RecordRateLimit(time.Hour)

	retryAt, backingOff := r.backingOff(time.Now())
	assert.True(t, backingOff)
	assert.Equal(t, r.RetryAt(), retryAt)

	start := time.Now()
	err := r.Wait(context.Background())

	assert.Less(t, time.Since(start), 100*time.Millisecond)
	var backoff *BackoffError
	require.True(t, errors.As(err, &backoff))
	assert.Equal(t, retryAt, backoff.RetryAt)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestRateLimiter_RecordRateLimit_DefaultBackoff(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})
	start := time.Now()

	r.RecordRateLimit(0)

	assert.WithinDuration(t, start.Add(DefaultBackoff), r.RetryAt(), time.Second)
}

func TestRateLimiter_RecordRateLimit_KeepsLongerWindow(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{})

	r.RecordRateLimit(time.Hour)
	long := r.RetryAt()
	r.RecordRateLimit(time.Second)

	assert.Equal(t, long, r.RetryAt())
}

func TestRateLimiter_ShortBackoffExpires(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})

	r.RecordRateLimit(10 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, backingOff := r.backingOff(time.Now())
	assert.False(t, backingOff)
	require.NoError(t, r.Wait(context.Background()))
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"absent", "", 0},
		{"seconds", "30", 30 * time.Second},
		{"zero", "0", 0},
		{"negative", "-5", 0},
		{"http date", now.Add(90 * time.Second).Format(http.TimeFormat), 90 * time.Second},
		{"past date", now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"garbage", "soon", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.value != "" {
				h.Set(HeaderRetryAfter, tt.value)
			}

			assert.Equal(t, tt.want, parseRetryAfter(h, now))
		})
	}
}
