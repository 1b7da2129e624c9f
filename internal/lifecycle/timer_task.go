package lifecycle

import (
	"context"
	"time"
)

// TimerHandler is invoked once immediately on Start and then again
// after each completed call, once interval has elapsed since that call
// returned.
type TimerHandler func(context.Context)

// TimerTask repeatedly invokes a TimerHandler in its own goroutine,
// waiting interval between the end of one call and the start of the
// next.
//
// This differs from driving h off a plain time.Ticker: a ticker fires
// on a fixed wall-clock cadence regardless of how long h takes, so a
// single slow call (lock contention on AcquireNextJob, a large Clean
// sweep) leaves ticks queued up and gets repaid as a burst of
// back-to-back catch-up calls the moment it returns. TimerTask instead
// resets its wait only once h has returned, so interval always bounds
// the idle gap between calls, not just the gap between call starts.
// That is the guarantee PollInterval needs: how often an idle worker
// hits the store, not how often it merely tries to.
type TimerTask struct {
	cancel context.CancelFunc
	done   DoneChan
}

func (t *TimerTask) run(ctx context.Context, h TimerHandler, interval time.Duration) {
	defer close(t.done)

	h(ctx)
	timer := time.NewTimer(interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			h(ctx)
			timer.Reset(interval)
		}
	}
}

// Start begins running h, waiting interval after each call returns
// before running it again, until Stop is called or ctx is canceled.
func (t *TimerTask) Start(ctx context.Context, h TimerHandler, interval time.Duration) {
	t.done = make(DoneChan)
	ctx, t.cancel = context.WithCancel(ctx)
	go t.run(ctx, h, interval)
}

// Stop cancels the task and returns a channel closed once its goroutine
// has exited, after any in-flight call to h returns.
func (t *TimerTask) Stop() DoneChan {
	t.cancel()
	return t.done
}
