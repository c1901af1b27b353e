package database

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"ollacart_server/config"

	"github.com/jackc/pgx/v5/pgconn"
)

// RetryConfig controls the backoff behavior for transient database errors
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig is used by all query executions
var DefaultRetryConfig = RetryConfig{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

// retryableStates are SQLSTATE codes that indicate a transient failure
// worth retrying: serialization conflicts, deadlocks, and connection loss.
var retryableStates = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"08000": true, // connection_exception
	"08003": true, // connection_does_not_exist
	"08006": true, // connection_failure
	"53300": true, // too_many_connections
	"57P03": true, // cannot_connect_now
}

// unavailableStates are SQLSTATE codes that mean the database itself is
// unreachable rather than the statement being wrong.
var unavailableStates = map[string]bool{
	"08000": true,
	"08003": true,
	"08006": true,
	"53300": true,
	"57P03": true,
}

// IsRetryable reports whether the error is transient and worth retrying
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return retryableStates[pgErr.Code]
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return isConnectionMessage(err)
}

// IsUnavailable reports whether the error indicates the database is unreachable
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return unavailableStates[pgErr.Code]
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return isConnectionMessage(err)
}

func isConnectionMessage(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, fragment := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"no such host",
		"i/o timeout",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

// WithRetry executes fn, retrying transient failures with jittered
// exponential backoff. Non-retryable errors are returned immediately.
func WithRetry(ctx context.Context, fn func() error) error {
	return withRetryConfig(ctx, DefaultRetryConfig, fn)
}

func withRetryConfig(ctx context.Context, cfg RetryConfig, fn func() error) error {
	logger := config.GetLogger()

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if !IsRetryable(lastErr) {
			return lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		delay := cfg.BaseDelay << (attempt - 1)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
		// Add jitter to avoid thundering herd on reconnect
		delay += time.Duration(rand.Int64N(int64(delay / 2)))

		logger.Warn("Retrying database operation",
			gecho.Field("attempt", attempt),
			gecho.Field("delay", delay),
			gecho.Field("error", lastErr),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}
