package store

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/job"
)

// jobModel is the bun row model for the jobs table. Timestamps are
// stored as TEXT in the fixed ISO layout (spec.md §6), not bun's native
// time.Time column type: the spec requires exact lexicographic
// ordering under a literal YYYY-MM-DDTHH:MM:SSZ format, and round-trips
// through clock.FormatISO/ParseISO at the model boundary.
type jobModel struct {
	bun.BaseModel `bun:"table:jobs"`

	ID      string `bun:"id,pk"`
	Command string `bun:"command,notnull"`
	State   string `bun:"state,notnull"`

	Attempts   uint32 `bun:"attempts,notnull,default:0"`
	MaxRetries uint32 `bun:"max_retries,notnull,default:3"`

	CreatedAt string `bun:"created_at,notnull"`
	UpdatedAt string `bun:"updated_at,notnull"`
	RunAt     string `bun:"run_at,notnull"`

	Priority int32 `bun:"priority,notnull,default:0"`

	WorkerID    string  `bun:"worker_id"`
	LockedUntil *string `bun:"locked_until"`
	LastError   *string `bun:"last_error"`
}

func (m *jobModel) toJob() (*job.Job, error) {
	createdAt, err := clock.ParseISO(m.CreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := clock.ParseISO(m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	runAt, err := clock.ParseISO(m.RunAt)
	if err != nil {
		return nil, err
	}
	status, err := job.ParseStatus(m.State)
	if err != nil {
		return nil, err
	}
	var lockedUntil *time.Time
	if m.LockedUntil != nil {
		t, err := clock.ParseISO(*m.LockedUntil)
		if err != nil {
			return nil, err
		}
		lockedUntil = &t
	}
	lastError := ""
	if m.LastError != nil {
		lastError = *m.LastError
	}
	return &job.Job{
		ID:          m.ID,
		Command:     m.Command,
		Status:      status,
		Attempts:    m.Attempts,
		MaxRetries:  m.MaxRetries,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		RunAt:       runAt,
		Priority:    m.Priority,
		WorkerID:    m.WorkerID,
		LockedUntil: lockedUntil,
		LastError:   lastError,
	}, nil
}

// jobLogModel is the bun row model for the job_logs table.
type jobLogModel struct {
	bun.BaseModel `bun:"table:job_logs"`

	ID        int64  `bun:"id,pk,autoincrement"`
	JobID     string `bun:"job_id,notnull"`
	CreatedAt string `bun:"created_at,notnull"`
	ExitCode  int    `bun:"exit_code,notnull"`
	Stdout    string `bun:"stdout,notnull"`
	Stderr    string `bun:"stderr,notnull"`
}

// configModel is the bun row model for the config table.
type configModel struct {
	bun.BaseModel `bun:"table:config"`

	Key   string `bun:"key,pk"`
	Value string `bun:"value,notnull"`
}
