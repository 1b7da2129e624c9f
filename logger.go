package queuectl

import (
	"context"
	"time"
)

// JobLog is one append-only record of a single execution attempt.
type JobLog struct {
	ID        int64
	JobID     string
	CreatedAt time.Time
	ExitCode  int
	Stdout    string
	Stderr    string
}

// Logger appends and retrieves per-attempt execution logs. One row is
// written per execution attempt; rows are removed only by cascade delete
// of their parent job (administrative job deletion is out of scope).
type Logger interface {
	// LogExecution appends one log row for jobID. stdout and stderr are
	// clamped to 65535 runes (tail truncated) before being stored.
	LogExecution(ctx context.Context, jobID string, exitCode int, stdout string, stderr string) error

	// GetLogs returns up to limit log rows for jobID, most recent first.
	// limit <= 0 means no limit.
	GetLogs(ctx context.Context, jobID string, limit int) ([]JobLog, error)
}
