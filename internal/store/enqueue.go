package store

import (
	"context"
	"errors"
	"strings"

	"modernc.org/sqlite"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/job"
)

// SQLite extended result codes for constraint violations that indicate
// a duplicate primary key, per https://www.sqlite.org/rescode.html.
// modernc.org/sqlite surfaces these on *sqlite.Error.Code().
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// Enqueue inserts a new job, filling in every default spec.md §4.2
// names. Grounded on original_source/queuectl/repo.py:enqueue and the
// teacher's sql.Pusher.Push.
func (s *Store) Enqueue(ctx context.Context, req qc.NewJobRequest) (*job.Job, error) {
	if strings.TrimSpace(req.Command) == "" {
		return nil, qc.ErrEmptyCommand
	}

	now := clock.Now()

	id := req.ID
	if id == "" {
		id = clock.NewID()
	}

	maxRetries := uint32(0)
	if req.MaxRetries != nil {
		maxRetries = *req.MaxRetries
	} else {
		def, err := s.configDefaultMaxRetries(ctx)
		if err != nil {
			return nil, err
		}
		maxRetries = def
	}

	runAt := req.RunAt
	if runAt.IsZero() {
		runAt = now
	}

	row := &jobModel{
		ID:         id,
		Command:    req.Command,
		State:      job.Pending.String(),
		Attempts:   0,
		MaxRetries: maxRetries,
		CreatedAt:  clock.FormatISO(now),
		UpdatedAt:  clock.FormatISO(now),
		RunAt:      clock.FormatISO(runAt),
		Priority:   req.Priority,
	}

	_, err := s.db.NewInsert().Model(row).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, qc.ErrIDCollision
		}
		return nil, err
	}
	return row.toJob()
}

// isUniqueViolation reports whether err is a primary-key / unique
// constraint violation reported by the underlying SQLite driver,
// inspected by result code rather than by matching the error string.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqliteConstraintPrimaryKey || code == sqliteConstraintUnique
	}
	return false
}
