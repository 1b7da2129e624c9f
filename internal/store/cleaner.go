package store

import (
	"context"
	"time"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/job"
)

// Clean implements qc.Cleaner. Grounded on the teacher's sql.Cleaner.Clean,
// adapted to the Completed/Dead terminal states of this state machine and
// to the TEXT-encoded updated_at column.
func (s *Store) Clean(ctx context.Context, status job.Status, before *time.Time) (int64, error) {
	if status != job.Unknown && status != job.Completed && status != job.Dead {
		return 0, qc.ErrBadCleanStatus
	}

	q := s.db.NewDelete().Model((*jobModel)(nil))
	if status != job.Unknown {
		q = q.Where("state = ?", status.String())
	} else {
		q = q.Where("state IN (?, ?)", job.Completed.String(), job.Dead.String())
	}
	if before != nil {
		q = q.Where("updated_at <= ?", clock.FormatISO(*before))
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return rowsAffected(res), nil
}
