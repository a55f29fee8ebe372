// Package latency simulates the round trip of a remote call.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when the context ended the wait.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Scale multiplies d by factor. A zero factor disables the delay entirely.
func Scale(d time.Duration, factor float64) time.Duration {
	if factor <= 0 {
		return 0
	}
	return time.Duration(float64(d) * factor)
}
