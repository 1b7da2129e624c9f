package store

import (
	"context"

	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/job"
)

// DLQList returns every Dead job ordered by updated_at descending
// (spec.md §4.5).
func (s *Store) DLQList(ctx context.Context) ([]*job.Job, error) {
	var rows []jobModel
	err := s.db.NewSelect().
		Model(&rows).
		Where("state = ?", job.Dead.String()).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return toJobs(rows)
}

// DLQRetry revives a Dead job to Pending (spec.md §4.6). It returns
// whether a row was affected; calling it twice on the same id returns
// true then false, satisfying the idempotence property of spec.md §8.
func (s *Store) DLQRetry(ctx context.Context, id string) (bool, error) {
	now := clock.Now()
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Where("id = ?", id).
		Where("state = ?", job.Dead.String()).
		Set("state = ?", job.Pending.String()).
		Set("attempts = 0").
		Set("run_at = ?", clock.FormatISO(now)).
		Set("updated_at = ?", clock.FormatISO(now)).
		Set("last_error = NULL").
		Exec(ctx)
	if err != nil {
		return false, err
	}
	return affected(res), nil
}
