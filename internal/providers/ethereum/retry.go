package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/dao-indexer/internal/logger"
)

// RetryConfig bounds how a single JSON-RPC call is retried
type RetryConfig struct {
	// RequestTimeout caps one attempt, 0 leaves the attempt unbounded
	RequestTimeout time.Duration
	// MaxElapsedTime caps all attempts together, 0 retries until ctx is done
	MaxElapsedTime  time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig returns the retry policy used when nothing is configured
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		RequestTimeout:  30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     15 * time.Second,
	}
}

func (c RetryConfig) newBackoff(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	if c.InitialInterval > 0 {
		b.InitialInterval = c.InitialInterval
	}
	if c.MaxInterval > 0 {
		b.MaxInterval = c.MaxInterval
	}
	b.MaxElapsedTime = c.MaxElapsedTime
	return backoff.WithContext(b, ctx)
}

// withRetry runs fn under exponential backoff, each attempt with its own timeout.
// Errors wrapped in backoff.Permanent stop the loop and are returned unwrapped.
func withRetry[T any](ctx context.Context, cfg RetryConfig, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	attempts := 0

	err := backoff.RetryNotify(
		func() error {
			attempts++

			attemptCtx := ctx
			if cfg.RequestTimeout > 0 {
				var cancel context.CancelFunc
				attemptCtx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
				defer cancel()
			}

			var err error
			result, err = fn(attemptCtx)
			return err
		},
		cfg.newBackoff(ctx),
		func(err error, next time.Duration) {
			logger.WarnCtx(ctx, "JSON-RPC call failed, retrying",
				zap.String("op", op),
				zap.Int("attempt", attempts),
				zap.Duration("next_retry_in", next),
				zap.Error(err))
		},
	)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s failed after %d attempts: %w", op, attempts, err)
	}

	return result, nil
}
