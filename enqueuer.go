package queuectl

import (
	"context"
	"time"

	"github.com/queuectl/queuectl/job"
)

// NewJobRequest describes a job to enqueue. Command is the only required
// field; every other field takes a store-defined default when zero.
type NewJobRequest struct {
	// ID, if empty, is generated by the Enqueuer (a fresh UUID).
	ID string

	// Command is the shell command to run. Required.
	Command string

	// MaxRetries, if nil, defaults to the store's configured max_retries.
	MaxRetries *uint32

	// RunAt, if zero, defaults to now: the job is immediately eligible.
	RunAt time.Time

	// Priority orders acquisition; higher values run first. Defaults to 0.
	Priority int32
}

// Enqueuer inserts new jobs into the queue.
//
// Enqueue persists the job atomically and returns the job with every
// default filled in. If req.ID collides with an existing job, Enqueue
// returns ErrIDCollision and the job is not created. If req.Command is
// empty, Enqueue returns ErrEmptyCommand.
type Enqueuer interface {
	Enqueue(ctx context.Context, req NewJobRequest) (*job.Job, error)
}
