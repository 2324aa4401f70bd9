package isdayoff

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// DefaultBackoff applies when a 429 carries no usable Retry-After.
const DefaultBackoff = 60 * time.Second

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit keeps month views snappy without hammering the service.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}

// RateLimiter throttles oracle requests with a token bucket and
// honours back-off windows announced by 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a rate limiter with the given configuration.
// Non-positive values fall back to DefaultRateLimit.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRateLimit.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultRateLimit.BurstSize
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until the token bucket allows a request.
// While a back-off window set by RecordRateLimit is open it returns a
// *BackoffError immediately instead of waiting.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if retryAt, ok := r.backingOff(time.Now()); ok {
		return &BackoffError{RetryAt: retryAt}
	}
	return r.limiter.Wait(ctx)
}

// backingOff reports whether now falls inside the back-off window.
func (r *RateLimiter) backingOff(now time.Time) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt, now.Before(r.retryAt)
}

// RecordRateLimit sets a backoff period after a 429 response.
func (r *RateLimiter) RecordRateLimit(backoff time.Duration) {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	until := time.Now().Add(backoff)
	if until.After(r.retryAt) {
		r.retryAt = until
	}
}

// RetryAt returns the end of the current backoff window, zero if none was recorded.
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}

// parseRetryAfter reads a Retry-After header given either as seconds or as an HTTP date.
// Returns 0 when the header is absent or unusable.
func parseRetryAfter(h http.Header, now time.Time) time.Duration {
	value := strings.TrimSpace(h.Get(HeaderRetryAfter))
	if value == "" {
		return 0
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
