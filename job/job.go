package job

import "time"

// Job is a unit of work managed by the queue storage.
//
// CreatedAt records when the job was first enqueued and never changes.
// UpdatedAt is bumped on every state transition.
//
// Status is the current lifecycle state (see Status).
// Attempts counts how many execution attempts have failed; it is
// incremented on each failure and reset to 0 by a DLQ retry.
// MaxRetries bounds how many times a failure may reschedule the job before
// it is moved to Dead.
// LockedUntil is the visibility timeout; while set and in the future the
// job is considered owned by WorkerID. Nil when the job is not leased.
// RunAt is the earliest time the job may be pulled.
// Priority orders acquisition: higher values are acquired first; ties are
// broken by CreatedAt ascending.
// LastError holds the most recent failure's truncated stderr or synthetic
// exit-code message, cleared on a DLQ retry.
//
// Job values returned by a Store are snapshots. Mutating fields directly
// does not change stored state; transitions go through Store methods.
type Job struct {
	ID      string
	Command string

	Status     Status
	Attempts   uint32
	MaxRetries uint32

	CreatedAt time.Time
	UpdatedAt time.Time
	RunAt     time.Time

	Priority int32

	WorkerID    string
	LockedUntil *time.Time

	LastError string
}
