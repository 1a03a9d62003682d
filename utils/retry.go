package utils

import (
	"fmt"
	"time"
)

// RetryConfig holds the parameters for the retry strategy. The delay between
// attempts is fixed — no exponential growth and no jitter.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
	Logger      *Logger
}

// Do executes fn up to MaxAttempts times, sleeping Delay between attempts.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < r.MaxAttempts {
			r.Logger.Warn("[retry] %s failed (attempt %d/%d): %v — retrying in %v",
				operationName, attempt, r.MaxAttempts, lastErr, r.Delay)
			time.Sleep(r.Delay)
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, r.MaxAttempts, lastErr)
}
