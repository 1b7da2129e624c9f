package queuectl

import (
	"context"

	"github.com/queuectl/queuectl/job"
)

// Status is a snapshot of aggregate queue state, as returned by
// Observer.Status.
type Status struct {
	// Total is the total number of jobs across every state.
	Total int64

	// Counts maps each job.Status to the number of jobs currently in it.
	Counts map[job.Status]int64

	// ActiveWorkers is the count of distinct, non-empty worker_id values
	// among jobs whose lease (LockedUntil) has not yet expired. This is
	// advisory: it can lag by up to one lease period after a worker
	// crash, since expiry is detected passively.
	ActiveWorkers int64
}

// Observer provides read-only access to job state. It does not
// participate in lease handling or state transitions.
type Observer interface {
	// Get returns the job identified by id, or (nil, nil) if no such job
	// exists.
	Get(ctx context.Context, id string) (*job.Job, error)

	// List returns up to limit jobs ordered by CreatedAt ascending. If
	// status is job.Unknown, jobs in any state are returned. limit <= 0
	// means no limit.
	List(ctx context.Context, status job.Status, limit int) ([]*job.Job, error)

	// Status returns an aggregate snapshot of queue state.
	Status(ctx context.Context) (Status, error)
}

// DeadLetterQueue is the logical view over jobs in the Dead state.
type DeadLetterQueue interface {
	// DLQList returns every Dead job, ordered by UpdatedAt descending.
	DLQList(ctx context.Context) ([]*job.Job, error)

	// DLQRetry revives a Dead job: Attempts resets to 0, RunAt to now,
	// LastError to empty, and Status to Pending. It returns whether a
	// row was affected — false if the job does not exist or is not
	// currently Dead, in which case nothing is changed. Calling
	// DLQRetry twice in a row on the same id therefore returns true once
	// and false thereafter.
	DLQRetry(ctx context.Context, id string) (bool, error)
}
