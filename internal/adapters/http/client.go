package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	smokeerrors "smokecheck/internal/errors"
)

const (
	// HTTP client retry configuration.
	defaultRetryCount       = 3
	defaultRetryWaitTime    = time.Second
	defaultRetryMaxWaitTime = 5 * time.Second

	// Rate limiting configuration.
	rateLimitRequestsPerSecond = 10
	rateLimitBurst             = 20
)

// Adapter is an HTTP client adapter using resty with rate limiting.
type Adapter struct {
	client  *resty.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewAdapter creates a new HTTP adapter with rate limiting and retry capabilities.
// Rate limit: 10 requests per second with burst of 20.
func NewAdapter(timeout time.Duration, insecureSkipVerify bool, logger *slog.Logger) *Adapter {
	a := &Adapter{
		limiter: rate.NewLimiter(rate.Limit(rateLimitRequestsPerSecond), rateLimitBurst),
		logger:  logger,
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWaitTime).
		SetRetryMaxWaitTime(defaultRetryMaxWaitTime).
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // User-configurable for self-signed certificates
		}).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return a.limiter.Wait(req.Context())
	})

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		logger.DebugContext(req.Context(), "HTTP request",
			"method", req.Method,
			"url", req.URL,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.DebugContext(resp.Request.Context(), "HTTP response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	a.client = client
	return a
}

// Download performs a GET request and returns the response body.
func (a *Adapter) Download(ctx context.Context, url string) ([]byte, error) {
	resp, err := a.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, smokeerrors.NewHTTPErrorWithCause(0, http.MethodGet, url,
			"request failed", fmt.Errorf("%w: %w", smokeerrors.ErrNetwork, err))
	}

	if resp.IsError() {
		return nil, smokeerrors.NewHTTPError(resp.StatusCode(), http.MethodGet, url, resp.Status())
	}

	return resp.Body(), nil
}

// SetRateLimit allows configuring the rate limiter after creation.
func (a *Adapter) SetRateLimit(requestsPerSecond float64, burst int) {
	a.limiter.SetLimit(rate.Limit(requestsPerSecond))
	a.limiter.SetBurst(burst)
}

// RateLimit returns the current requests per second and burst.
func (a *Adapter) RateLimit() (float64, int) {
	return float64(a.limiter.Limit()), a.limiter.Burst()
}
