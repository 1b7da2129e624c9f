package queuectl

import (
	"context"
	"time"

	"github.com/queuectl/queuectl/job"
)

// Cleaner permanently removes terminal jobs from storage. It is
// intended for administrative and retention-management use; it does not
// participate in normal job processing and never touches a non-terminal
// job.
type Cleaner interface {
	// Clean deletes jobs matching status whose UpdatedAt is at or before
	// before (when before is non-nil; a nil before applies no time
	// filter). status must be job.Completed, job.Dead, or job.Unknown
	// (meaning both); any other status returns ErrBadCleanStatus and
	// deletes nothing.
	//
	// Clean returns the number of deleted rows. Deleting a job cascades
	// to its job_logs.
	Clean(ctx context.Context, status job.Status, before *time.Time) (int64, error)
}
