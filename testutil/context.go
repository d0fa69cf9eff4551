package testutil

import (
	"context"
	"testing"
	"time"
)

// liveTimeout leaves room for a couple of throttle waits.
const liveTimeout = 2 * time.Minute

func ContextWithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()

	return ContextWithCustomTimeout(t, liveTimeout)
}

func ContextWithCustomTimeout(t *testing.T, timeout time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), timeout)
	t.Cleanup(cancel)

	return ctx, cancel
}
