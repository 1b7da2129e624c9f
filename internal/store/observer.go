package store

import (
	"context"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/job"
)

// Get returns the job identified by id, or (nil, nil) if it does not
// exist. Grounded on the teacher's sql.Observer.Get.
func (s *Store) Get(ctx context.Context, id string) (*job.Job, error) {
	var row jobModel
	err := s.db.NewSelect().
		Model(&row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return row.toJob()
}

// List returns up to limit jobs ordered by created_at ascending
// (spec.md §4.5). status == job.Unknown means no filter.
func (s *Store) List(ctx context.Context, status job.Status, limit int) ([]*job.Job, error) {
	q := s.db.NewSelect().Model((*jobModel)(nil)).Order("created_at ASC")
	if status != job.Unknown {
		q = q.Where("state = ?", status.String())
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []jobModel
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, err
	}
	return toJobs(rows)
}

// Status returns an aggregate snapshot: total count, per-state counts,
// and the advisory active-worker count (spec.md §4.5).
func (s *Store) Status(ctx context.Context) (qc.Status, error) {
	total, err := s.db.NewSelect().Model((*jobModel)(nil)).Count(ctx)
	if err != nil {
		return qc.Status{}, err
	}

	counts := make(map[job.Status]int64, 5)
	for _, st := range []job.Status{job.Pending, job.Processing, job.Completed, job.Failed, job.Dead} {
		n, err := s.db.NewSelect().
			Model((*jobModel)(nil)).
			Where("state = ?", st.String()).
			Count(ctx)
		if err != nil {
			return qc.Status{}, err
		}
		counts[st] = int64(n)
	}

	nowISO := clock.FormatISO(clock.Now())
	var active int64
	err = s.db.NewSelect().
		Model((*jobModel)(nil)).
		ColumnExpr("COUNT(DISTINCT worker_id)").
		Where("worker_id IS NOT NULL AND worker_id != ''").
		Where("locked_until > ?", nowISO).
		Scan(ctx, &active)
	if err != nil {
		return qc.Status{}, err
	}

	return qc.Status{
		Total:         int64(total),
		Counts:        counts,
		ActiveWorkers: active,
	}, nil
}

func toJobs(rows []jobModel) ([]*job.Job, error) {
	ret := make([]*job.Job, 0, len(rows))
	for i := range rows {
		j, err := rows[i].toJob()
		if err != nil {
			return nil, err
		}
		ret = append(ret, j)
	}
	return ret, nil
}
