package recommend

import (
	"context"
	"time"
)

// Delayer paces the presentation of results. Scoring never depends on it.
type Delayer interface {
	Wait(ctx context.Context) error
}

// NoDelay returns immediately.
type NoDelay struct{}

// Wait implements Delayer.
func (NoDelay) Wait(context.Context) error { return nil }

// Sleep waits for a fixed duration or until ctx is done, whichever comes
// first. Non-positive durations do not wait.
type Sleep time.Duration

// Wait implements Delayer.
func (d Sleep) Wait(ctx context.Context) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DelayFor returns NoDelay for non-positive d, otherwise Sleep(d).
func DelayFor(d time.Duration) Delayer {
	if d <= 0 {
		return NoDelay{}
	}
	return Sleep(d)
}
