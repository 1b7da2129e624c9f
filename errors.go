package queuectl

import "errors"

var (
	// ErrJobLost indicates the referenced job no longer exists in storage,
	// or cannot be found in the state a caller expected. This can happen
	// if the job was concurrently removed or transitioned by another actor.
	ErrJobLost = errors.New("queuectl: job lost")

	// ErrLockLost indicates the caller no longer holds the job's lease:
	// the visibility timeout expired and another worker acquired the job
	// (or, for a fenced write, the worker_id on the row no longer matches
	// the caller) before the current write was applied.
	ErrLockLost = errors.New("queuectl: lock lost")

	// ErrIDCollision indicates Enqueue was called with an id that already
	// exists in storage.
	ErrIDCollision = errors.New("queuectl: job id already exists")

	// ErrNotDead indicates DLQRetry was called on a job that is not
	// currently in the Dead state.
	ErrNotDead = errors.New("queuectl: job not in dead-letter queue")

	// ErrBadCleanStatus indicates Clean was called with a non-terminal
	// status. Only job.Completed, job.Dead, and job.Unknown (meaning
	// "both") are valid.
	ErrBadCleanStatus = errors.New("queuectl: clean requires a terminal status")

	// ErrUnknownConfigKey indicates GetConfig/GetConfigInt was called with
	// a key that has no row in the config table.
	ErrUnknownConfigKey = errors.New("queuectl: unknown config key")

	// ErrEmptyCommand indicates Enqueue was called with a blank command.
	ErrEmptyCommand = errors.New("queuectl: command must not be empty")

	// ErrInvalidConfigValue indicates SetConfig was called with a value
	// that fails validation for the given key.
	ErrInvalidConfigValue = errors.New("queuectl: invalid config value")
)
