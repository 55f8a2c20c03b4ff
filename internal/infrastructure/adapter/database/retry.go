package database

import (
	"context"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
}

// retryConfigFor builds the startup retry policy from the database configuration
func retryConfigFor(c *Config) RetryConfig {
	return RetryConfig{
		MaxRetries:    c.RetryAttempts,
		RetryInterval: c.RetryDelay,
		MaxInterval:   30 * time.Second,
	}
}

// RetryOnTransientError runs operation once and then up to MaxRetries more times
// while it fails with a transient error. Only used while starting up;
// request handling never retries.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	logger coreport.Logger,
) error {
	err := operation()

	for attempt := 0; err != nil && attempt < config.MaxRetries; attempt++ {
		if !isTransientError(err) {
			return err
		}

		backoff := calculateBackoff(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}

		err = operation()
	}

	return err
}

// calculateBackoff doubles the interval per attempt up to MaxInterval
func calculateBackoff(attempt int, config RetryConfig) time.Duration {
	if config.RetryInterval <= 0 {
		return 0
	}
	backoff := config.RetryInterval * (1 << uint(attempt))
	// a shift past 63 bits wraps below the base interval
	if backoff > config.MaxInterval || backoff < config.RetryInterval {
		backoff = config.MaxInterval
	}
	return backoff
}

// isTransientError checks if an error is transient and can be retried
func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "the database system is starting up") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "database is locked") ||
		strings.Contains(errMsg, "eof")
}
