// Package testutil holds helpers shared by encard tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that drive a UI program.
const DefaultTimeout = 5 * time.Second

// RunWithTimeout runs fn on its own goroutine and fails the test if it does not
// return within timeout or before the test deadline.
func RunWithTimeout(t testing.TB, timeout time.Duration, fn func()) {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dt, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := dt.Deadline(); ok {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-ctx.Done():
		t.Fatalf("timed out after %s", timeout)
	}
}
