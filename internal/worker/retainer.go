package worker

import (
	"context"
	"log/slog"
	"time"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/internal/lifecycle"
	"github.com/queuectl/queuectl/job"
)

// Retainer periodically deletes terminal jobs older than a retention
// window. Adapted from the teacher's CleanWorker
// (_examples/RomanQed-gqs/clean_worker.go): off by default, it only
// ever deletes Completed and Dead rows, never Pending, Processing, or
// Failed (SPEC_FULL.md §4.9.2).
type Retainer struct {
	lifecycle.Base
	task      lifecycle.TimerTask
	cleaner   qc.Cleaner
	interval  time.Duration
	retention time.Duration
	log       *slog.Logger
}

// NewRetainer creates a Retainer that runs every interval, deleting
// Completed/Dead jobs whose UpdatedAt is older than retention.
func NewRetainer(cleaner qc.Cleaner, interval, retention time.Duration, log *slog.Logger) *Retainer {
	return &Retainer{
		cleaner:   cleaner,
		interval:  interval,
		retention: retention,
		log:       log,
	}
}

func (r *Retainer) clean(ctx context.Context) {
	before := clock.Now().Add(-r.retention)
	n, err := r.cleaner.Clean(ctx, job.Unknown, &before)
	if err != nil {
		r.log.Error("retention clean failed", "err", err)
		return
	}
	if n > 0 {
		r.log.Info("retention cleaned jobs", "count", n)
	}
}

// Start begins periodic retention cleaning.
func (r *Retainer) Start(ctx context.Context) error {
	if err := r.TryStart(); err != nil {
		return err
	}
	r.task.Start(ctx, r.clean, r.interval)
	return nil
}

// Stop halts retention cleaning, waiting up to timeout for the
// in-flight run to finish.
func (r *Retainer) Stop(timeout time.Duration) error {
	return r.TryStop(timeout, func() lifecycle.DoneChan {
		return r.task.Stop()
	})
}
