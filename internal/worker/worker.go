// Package worker implements the single-process poll loop that acquires,
// runs, and resolves jobs.
//
// Grounded on the teacher's Worker (_examples/RomanQed-gqs/worker.go):
// the same lifecycle.Base start/stop guard and lifecycle.TimerTask
// polling structure, and the same handleOrExtend pattern for running a
// handler in a goroutine while a ticking lease extension keeps it alive.
// Unlike the teacher, which dispatches pulled jobs into an in-process
// worker pool, this loop processes one job at a time: the spec's
// concurrency model is N worker OS processes, not N in-process
// goroutines (SPEC_FULL.md §4.9), so internal.WorkerPool has no
// counterpart here.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/executor"
	"github.com/queuectl/queuectl/internal/lifecycle"
	"github.com/queuectl/queuectl/job"
)

// Repository is the slice of storage capability the worker loop needs:
// lease management and execution logging.
type Repository interface {
	qc.Leaser
	qc.Logger
}

// Config defines runtime behavior of a Worker.
type Config struct {
	// PollInterval is how often the worker polls storage for a new job
	// when idle.
	PollInterval time.Duration

	// Lease is the visibility timeout assigned to each acquired job. The
	// worker extends it at Lease/2 intervals while the command runs.
	Lease time.Duration

	// Timeout bounds how long a single command may run before it is
	// killed and the job is failed with exit code 124.
	Timeout time.Duration
}

// Worker polls for jobs, runs their command through internal/executor,
// and resolves them via Complete or Fail.
type Worker struct {
	lifecycle.Base
	repo     Repository
	pollTask lifecycle.TimerTask
	id       string
	cfg      Config
	log      *slog.Logger
}

// ID returns the worker's identity, "pid-<PID>" as SPEC_FULL.md §4.9
// requires.
func ID() string {
	return "pid-" + strconv.Itoa(os.Getpid())
}

// New creates a Worker. The worker is not started automatically.
func New(repo Repository, cfg Config, log *slog.Logger) *Worker {
	return &Worker{
		repo: repo,
		id:   ID(),
		cfg:  cfg,
		log:  log,
	}
}

// Start begins the poll loop. It returns lifecycle.ErrDoubleStarted if
// already running.
func (w *Worker) Start(ctx context.Context) error {
	if err := w.TryStart(); err != nil {
		return err
	}
	w.pollTask.Start(ctx, w.poll, w.cfg.PollInterval)
	return nil
}

// Stop gracefully halts the poll loop, waiting up to timeout for any
// in-flight job to finish being resolved.
func (w *Worker) Stop(timeout time.Duration) error {
	return w.TryStop(timeout, func() lifecycle.DoneChan {
		return w.pollTask.Stop()
	})
}

func (w *Worker) poll(ctx context.Context) {
	jb, err := w.repo.AcquireNextJob(ctx, w.id, w.cfg.Lease)
	if err != nil {
		w.log.Error("acquire failed", "err", err)
		return
	}
	if jb == nil {
		return
	}
	w.run(jb)
}

type execResult struct {
	res executor.Result
}

// run executes jb's command and resolves it. It deliberately does not
// take the poll loop's context: that context is canceled the moment
// the process starts shutting down, and a job already in flight must
// be allowed to drain to completion (bounded only by cfg.Timeout)
// rather than being killed by the same signal that stops polling for
// new work.
func (w *Worker) run(jb *job.Job) {
	drainCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan execResult, 1)
	go func() {
		done <- execResult{res: executor.Run(drainCtx, jb.Command, w.cfg.Timeout)}
	}()

	ticker := time.NewTicker(w.cfg.Lease / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.repo.ExtendLock(drainCtx, jb.ID, w.id, w.cfg.Lease); err != nil {
				// The lease is no longer ours: another worker may already
				// be running this job. Let the local command finish but
				// discard its result instead of writing a completion or
				// failure that could race the new owner.
				w.log.Warn("lease lost mid-execution, discarding result", "id", jb.ID, "err", err)
				<-done
				return
			}
		case r := <-done:
			w.resolve(drainCtx, jb, r.res)
			return
		}
	}
}

func (w *Worker) resolve(ctx context.Context, jb *job.Job, res executor.Result) {
	if err := w.repo.LogExecution(ctx, jb.ID, res.ExitCode, res.Stdout, res.Stderr); err != nil {
		w.log.Error("log execution failed", "id", jb.ID, "err", err)
	}

	if res.ExitCode == 0 {
		if err := w.repo.CompleteJob(ctx, jb.ID, w.id); err != nil {
			if errors.Is(err, qc.ErrLockLost) {
				w.log.Warn("lock lost before complete", "id", jb.ID)
				return
			}
			w.log.Error("complete failed", "id", jb.ID, "err", err)
		}
		return
	}

	lastError := res.Stderr
	if lastError == "" {
		lastError = "exit code " + strconv.Itoa(res.ExitCode)
	}
	if err := w.repo.FailJob(ctx, jb.ID, w.id, lastError); err != nil {
		if errors.Is(err, qc.ErrLockLost) {
			w.log.Warn("lock lost before fail", "id", jb.ID)
			return
		}
		w.log.Error("fail failed", "id", jb.ID, "err", err)
	}
}
