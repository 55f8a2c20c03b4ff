package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock so token expiry, default expense dates
// and record timestamps can be controlled in tests
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// WithTimeout derives a context that is canceled after timeout
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
