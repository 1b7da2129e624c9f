package queuectl

import (
	"context"
	"time"

	"github.com/queuectl/queuectl/job"
)

// Leaser manages the acquire/execute/resolve lifecycle of jobs.
//
// Leaser provides visibility-timeout (lease) semantics: AcquireNextJob
// transitions a job from Pending or Failed to Processing and is
// invisible to other callers until its lease (LockedUntil) expires.
//
// All transitions are at-least-once: a crashed worker's lease simply
// expires and the job becomes eligible again. Handlers must therefore
// be idempotent.
type Leaser interface {
	// AcquireNextJob selects the single best-ranked eligible job —
	// state in {Pending, Failed}, RunAt <= now, and LockedUntil either
	// unset or already in the past — ordered by priority descending then
	// CreatedAt ascending, and atomically transitions it to Processing
	// with a lease of the given duration owned by workerID.
	//
	// The UPDATE that performs this transition reasserts the full
	// eligibility predicate and checks the affected-row count; if another
	// worker won the race, AcquireNextJob returns (nil, nil) rather than
	// an error, and the caller is expected to try again on its next poll.
	//
	// If no eligible job exists, AcquireNextJob returns (nil, nil).
	AcquireNextJob(ctx context.Context, workerID string, lease time.Duration) (*job.Job, error)

	// ExtendLock extends the lease of a job this worker currently holds.
	//
	// ExtendLock only succeeds if the job is Processing and its
	// worker_id matches workerID; otherwise it returns ErrLockLost and
	// makes no change.
	ExtendLock(ctx context.Context, jobID string, workerID string, lease time.Duration) error

	// CompleteJob transitions a Processing job owned by workerID to
	// Completed, clearing its lease.
	//
	// If the job is not Processing or is not owned by workerID,
	// CompleteJob returns ErrLockLost and makes no change.
	CompleteJob(ctx context.Context, jobID string, workerID string) error

	// FailJob records a failed attempt for a Processing job owned by
	// workerID. attempts is incremented; if the new attempts count
	// exceeds the job's MaxRetries the job moves to Dead, otherwise it
	// moves to Failed with RunAt set to now plus the configured
	// exponential backoff for the new attempt count. lastError is
	// clamped to 512 characters and stored regardless of outcome.
	//
	// If the job is not Processing or is not owned by workerID, FailJob
	// returns ErrLockLost and makes no change.
	FailJob(ctx context.Context, jobID string, workerID string, lastError string) error
}
