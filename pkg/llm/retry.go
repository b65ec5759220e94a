package llm

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/openai/openai-go"
)

const (
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxBackoff     = 3 * time.Second
	defaultBackoffFactor  = 2.0
)

// RetryConfig bounds how often and how hard a failed completion call is
// retried.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// RetryHandler reruns transient failures with exponential backoff.
type RetryHandler struct {
	cfg RetryConfig
}

// NewRetryHandler fills unset or out-of-range config fields with defaults.
func NewRetryHandler(cfg RetryConfig) *RetryHandler {
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaultInitialBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = defaultBackoffFactor
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return &RetryHandler{cfg: cfg}
}

// Do runs fn, sleeping between attempts, until it succeeds, hits a terminal
// error, or spends the retry budget. Context cancellation cuts the wait short.
func (r *RetryHandler) Do(ctx context.Context, fn func() error) error {
	var attempt int
	backoff := r.cfg.InitialBackoff

	for {
		err := fn()
		if err == nil {
			return nil
		}

		if !shouldRetry(err) || attempt >= r.cfg.MaxRetries {
			return err
		}
		attempt++

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		backoff = time.Duration(math.Min(
			float64(r.cfg.MaxBackoff),
			float64(backoff)*r.cfg.Multiplier,
		))
	}
}

// shouldRetry treats rate limiting, upstream 5xx, and transient network
// failures as retryable; everything else surfaces immediately.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusRequestTimeout,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Temporary() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return false
}
