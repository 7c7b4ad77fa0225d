package ctxutil

import (
	"context"
	"time"
)

// DefaultAsyncTimeout bounds best-effort calls that must not hold up a response.
const DefaultAsyncTimeout = 5 * time.Second

// WithAsyncContext derives a context that keeps parent values (trace id, gin
// context) but ignores parent cancellation and expires after timeout.
func WithAsyncContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultAsyncTimeout
	}
	return context.WithTimeout(context.WithoutCancel(parent), timeout)
}
