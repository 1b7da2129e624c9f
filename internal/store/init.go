package store

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

func createJobsTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*jobModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func createJobLogsTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*jobLogModel)(nil)).
		IfNotExists().
		ForeignKey(`("job_id") REFERENCES "jobs" ("id") ON DELETE CASCADE`).
		Exec(ctx)
	return err
}

func createConfigTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*configModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func createAcquireIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*jobModel)(nil)).
		Index("idx_jobs_state_run_lock").
		Column("state", "run_at", "locked_until").
		IfNotExists().
		Exec(ctx)
	return err
}

func createPriorityIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*jobModel)(nil)).
		Index("idx_jobs_priority_created").
		Column("priority", "created_at").
		IfNotExists().
		Exec(ctx)
	return err
}

func createJobLogsIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*jobLogModel)(nil)).
		Index("idx_job_logs_job_id").
		Column("job_id").
		IfNotExists().
		Exec(ctx)
	return err
}

func seedConfigDefaults(ctx context.Context, db bun.IDB) error {
	for key, value := range defaultConfig {
		_, err := db.NewInsert().
			Model(&configModel{Key: key, Value: value}).
			Ignore().
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

// migrate creates every table and index if absent, and seeds the
// config defaults with insert-or-ignore, inside one transaction. It is
// idempotent and safe to call on every open (spec.md §4.1).
func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	steps := []func(context.Context, bun.IDB) error{
		createJobsTable,
		createJobLogsTable,
		createConfigTable,
		createAcquireIndex,
		createPriorityIndex,
		createJobLogsIndex,
		seedConfigDefaults,
	}
	for _, step := range steps {
		if err := step(ctx, tx); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}
