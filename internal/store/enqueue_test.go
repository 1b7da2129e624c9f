package store_test

import (
	"context"
	"testing"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

func TestEnqueueDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j, err := s.Enqueue(ctx, qc.NewJobRequest{Command: "echo hi"})
	if err != nil {
		t.Fatal(err)
	}
	if j.ID == "" {
		t.Fatal("expected a generated id")
	}
	if j.Status != job.Pending {
		t.Fatalf("expected Pending, got %v", j.Status)
	}
	if j.MaxRetries != 3 {
		t.Fatalf("expected default max_retries 3, got %d", j.MaxRetries)
	}
	if !j.RunAt.Equal(j.CreatedAt) {
		t.Fatalf("expected run_at == created_at by default, got run_at=%v created_at=%v", j.RunAt, j.CreatedAt)
	}
}

func TestEnqueueRejectsEmptyCommand(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, qc.NewJobRequest{Command: "   "})
	if err != qc.ErrEmptyCommand {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}

func TestEnqueueIDCollision(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "fixed-id", Command: "echo hi"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Enqueue(ctx, qc.NewJobRequest{ID: "fixed-id", Command: "echo bye"})
	if err != qc.ErrIDCollision {
		t.Fatalf("expected ErrIDCollision, got %v", err)
	}
}

func TestEnqueueCustomMaxRetries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n := uint32(7)
	j, err := s.Enqueue(ctx, qc.NewJobRequest{Command: "echo hi", MaxRetries: &n})
	if err != nil {
		t.Fatal(err)
	}
	if j.MaxRetries != 7 {
		t.Fatalf("expected max_retries 7, got %d", j.MaxRetries)
	}
}
