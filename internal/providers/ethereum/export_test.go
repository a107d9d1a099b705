package ethereum

import "context"

// Test-only access to unexported helpers for the external ethereum_test package
var IsTooManyResultsError = isTooManyResultsError

func WithRetry[T any](ctx context.Context, cfg RetryConfig, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	return withRetry(ctx, cfg, op, fn)
}
