package store

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/backoff"
	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/job"
)

// AcquireNextJob implements the contention core of spec.md §4.3.
//
// Grounded on the teacher's sql.Puller.Pull, which already performs a
// single UPDATE ... WHERE id IN (subquery) ... RETURNING to avoid the
// select-then-update race. This adapts it to single-job acquisition
// with the spec's exact ordering and re-asserts the eligibility
// predicate on the UPDATE itself (state guard + lock guard), checking
// the affected-row count rather than trusting the subquery snapshot —
// the guarded form spec.md §4.3/§9 mandates, which the teacher's own
// Pull already follows but the original Python source
// (repo.py:acquire_next_job) does not.
func (s *Store) AcquireNextJob(ctx context.Context, workerID string, lease time.Duration) (*job.Job, error) {
	now := clock.Now()
	nowISO := clock.FormatISO(now)
	lockedUntilISO := clock.FormatISO(now.Add(lease))

	eligible := func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("state IN (?, ?)", job.Pending.String(), job.Failed.String()).
			Where("run_at <= ?", nowISO).
			WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
				return sq.
					Where("locked_until IS NULL").
					WhereOr("locked_until <= ?", nowISO)
			})
	}

	var candidate jobModel
	err := eligible(s.db.NewSelect().Model(&candidate)).
		Column("id").
		Order("priority DESC", "created_at ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	res, err := eligible(s.db.NewUpdate().Model((*jobModel)(nil))).
		Where("id = ?", candidate.ID).
		Set("state = ?", job.Processing.String()).
		Set("worker_id = ?", workerID).
		Set("locked_until = ?", lockedUntilISO).
		Set("updated_at = ?", nowISO).
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if !affected(res) {
		// Lost the race to another worker between the SELECT and the
		// UPDATE; the caller retries on its next poll.
		return nil, nil
	}

	return s.Get(ctx, candidate.ID)
}

// ExtendLock extends the lease of a Processing job owned by workerID.
func (s *Store) ExtendLock(ctx context.Context, jobID string, workerID string, lease time.Duration) error {
	now := clock.Now()
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Where("id = ?", jobID).
		Where("state = ?", job.Processing.String()).
		Where("worker_id = ?", workerID).
		Set("locked_until = ?", clock.FormatISO(now.Add(lease))).
		Set("updated_at = ?", clock.FormatISO(now)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !affected(res) {
		return qc.ErrLockLost
	}
	return nil
}

// CompleteJob transitions a Processing job owned by workerID to
// Completed. Fenced by worker_id in addition to state, per SPEC_FULL.md
// §4.4's resolution of the spec's fencing open question.
func (s *Store) CompleteJob(ctx context.Context, jobID string, workerID string) error {
	now := clock.Now()
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Where("id = ?", jobID).
		Where("state = ?", job.Processing.String()).
		Where("worker_id = ?", workerID).
		Set("state = ?", job.Completed.String()).
		Set("worker_id = ?", "").
		Set("locked_until = NULL").
		Set("updated_at = ?", clock.FormatISO(now)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !affected(res) {
		return qc.ErrLockLost
	}
	return nil
}

// FailJob records a failed attempt for a Processing job owned by
// workerID, implementing the fail transition of spec.md §4.4: attempts
// increments; exceeding MaxRetries moves the job to Dead (RunAt
// unchanged), otherwise it moves to Failed with RunAt = now +
// backoff_base^attempts.
func (s *Store) FailJob(ctx context.Context, jobID string, workerID string, lastError string) error {
	now := clock.Now()
	current, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if current == nil || current.Status != job.Processing || current.WorkerID != workerID {
		return qc.ErrLockLost
	}

	base, err := s.configBackoffBase(ctx)
	if err != nil {
		return err
	}

	attempts := current.Attempts + 1
	clamped := clampText(lastError, 512)

	q := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Where("id = ?", jobID).
		Where("state = ?", job.Processing.String()).
		Where("worker_id = ?", workerID).
		Set("attempts = ?", attempts).
		Set("worker_id = ?", "").
		Set("locked_until = NULL").
		Set("updated_at = ?", clock.FormatISO(now)).
		Set("last_error = ?", clamped)

	if attempts > current.MaxRetries {
		q = q.Set("state = ?", job.Dead.String())
	} else {
		delay := backoff.Delay(base, attempts)
		q = q.
			Set("state = ?", job.Failed.String()).
			Set("run_at = ?", clock.FormatISO(now.Add(delay)))
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return err
	}
	if !affected(res) {
		return qc.ErrLockLost
	}
	return nil
}
