package model

import (
	"context"
	"errors"
	"time"

	"exemplarcheck/pkg/core"
)

// RetryConfig holds the transport knobs shared by every provider client.
type RetryConfig struct {
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
}

func (c RetryConfig) withDefaults(timeout time.Duration) RetryConfig {
	if c.Timeout <= 0 {
		c.Timeout = timeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.Backoff <= 0 {
		c.Backoff = 500 * time.Millisecond
	}
	return c
}

// generateWithRetry drives one provider call with per-attempt timeouts
// and linear backoff. Context cancellation and deadline errors surface
// immediately; other transport errors are retried up to MaxRetries.
func generateWithRetry(ctx context.Context, cfg RetryConfig, call func(ctx context.Context) (core.Response, error)) (core.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		resp, err := call(attemptCtx)
		cancel()
		if err == nil {
			return resp, nil
		}

		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return core.Response{}, err
		}
		lastErr = err

		if attempt < cfg.MaxRetries {
			select {
			case <-ctx.Done():
				return core.Response{}, ctx.Err()
			case <-time.After(cfg.Backoff * time.Duration(attempt+1)):
			}
		}
	}
	return core.Response{}, lastErr
}
