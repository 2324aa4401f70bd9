package isdayoff

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/notecal/internal/core/domain"
	"github.com/custodia-labs/notecal/internal/core/ports/driven"
	"github.com/custodia-labs/notecal/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.DayTypeOracle = (*Client)(nil)

// DefaultBaseURL is the public isdayoff service.
const DefaultBaseURL = domain.DefaultOracleBaseURL

// maxBodySize bounds how much of a response is read.
const maxBodySize = 1 << 10

// Config holds configuration for the oracle client.
type Config struct {
	// BaseURL is prefixed to /YYYYMMDD (default: https://isdayoff.ru).
	BaseURL string

	// Timeout bounds a single request. Zero keeps the HTTP client default.
	Timeout time.Duration

	// RateLimit throttles outgoing requests (default: DefaultRateLimit).
	RateLimit RateLimitConfig

	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client
}

// ConfigFromSettings converts application settings into a client config.
func ConfigFromSettings(s domain.OracleSettings) Config {
	return Config{
		BaseURL: s.BaseURL,
		Timeout: s.Timeout,
		RateLimit: RateLimitConfig{
			RequestsPerSecond: s.RequestsPerSecond,
			BurstSize:         s.Burst,
		},
	}
}

// Client looks up day types from an isdayoff-compatible service.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *RateLimiter
	now     func() time.Time
}

// NewClient creates a new oracle client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: NewRateLimiter(cfg.RateLimit),
		now:     time.Now,
	}
}

// URL returns the lookup URL for a date.
func (c *Client) URL(date domain.Date) string {
	return c.baseURL + "/" + date.Compact()
}

// DayType fetches the raw day-type code for the date.
func (c *Client) DayType(ctx context.Context, date domain.Date) (domain.DayType, error) {
	url := c.URL(date)

	if err := c.limiter.Wait(ctx); err != nil {
		var backoff *BackoffError
		if errors.As(err, &backoff) {
			logger.Debug("isdayoff: skipping %s, backing off until %s", date, backoff.RetryAt.Format(time.RFC3339))
			return "", err
		}
		return "", fmt.Errorf("%w: wait for rate limiter: %w", domain.ErrOracleUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", domain.ErrOracleUnavailable, err)
	}

	logger.Debug("isdayoff: GET %s", url)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", domain.ErrOracleUnavailable, err)
	}
	text := strings.TrimSpace(string(body))

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			backoff := parseRetryAfter(resp.Header, c.now())
			c.limiter.RecordRateLimit(backoff)
			logger.Warnw("isdayoff: rate limited", "retry_at", c.limiter.RetryAt().Format(time.RFC3339))
		}
		return "", &APIError{StatusCode: resp.StatusCode, Body: text, URL: url}
	}

	logger.Debug("isdayoff: %s -> %q", date, text)
	return domain.DayType(text), nil
}
