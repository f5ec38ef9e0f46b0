// Package latency simulates processing time for the mock model endpoints.
package latency

import (
	"context"
	"time"
)

// Simulate blocks for d or until ctx is done, returning ctx.Err() in the
// latter case. A non-positive d does not block but still reports a
// context that is already done.
func Simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
