package store

import (
	"context"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/clock"
)

// maxLogFieldRunes is the clamp spec.md §4.7/§3 names for stdout/stderr.
const maxLogFieldRunes = 65535

// LogExecution appends one job_logs row for jobID (spec.md §4.7). One
// row is written per execution attempt regardless of outcome.
func (s *Store) LogExecution(ctx context.Context, jobID string, exitCode int, stdout string, stderr string) error {
	row := &jobLogModel{
		JobID:     jobID,
		CreatedAt: clock.FormatISO(clock.Now()),
		ExitCode:  exitCode,
		Stdout:    clampText(stdout, maxLogFieldRunes),
		Stderr:    clampText(stderr, maxLogFieldRunes),
	}
	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	return err
}

// GetLogs returns up to limit log rows for jobID, most recent first.
func (s *Store) GetLogs(ctx context.Context, jobID string, limit int) ([]qc.JobLog, error) {
	q := s.db.NewSelect().
		Model((*jobLogModel)(nil)).
		Where("job_id = ?", jobID).
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []jobLogModel
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, err
	}
	ret := make([]qc.JobLog, 0, len(rows))
	for _, r := range rows {
		createdAt, err := clock.ParseISO(r.CreatedAt)
		if err != nil {
			return nil, err
		}
		ret = append(ret, qc.JobLog{
			ID:        r.ID,
			JobID:     r.JobID,
			CreatedAt: createdAt,
			ExitCode:  r.ExitCode,
			Stdout:    r.Stdout,
			Stderr:    r.Stderr,
		})
	}
	return ret, nil
}
