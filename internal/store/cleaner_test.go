package store_test

import (
	"context"
	"testing"
	"time"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

func TestCleanDeletesCompletedAndDead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	zero := uint32(0)
	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "done", Command: "true"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "dead", Command: "false", MaxRetries: &zero}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "pending", Command: "echo hi"}); err != nil {
		t.Fatal(err)
	}

	if _, err := s.AcquireNextJob(ctx, "worker-1", time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteJob(ctx, "done", "worker-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AcquireNextJob(ctx, "worker-1", time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := s.FailJob(ctx, "dead", "worker-1", "boom"); err != nil {
		t.Fatal(err)
	}

	n, err := s.Clean(ctx, job.Unknown, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted rows, got %d", n)
	}

	remaining, err := s.List(ctx, job.Unknown, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != "pending" {
		t.Fatalf("expected only the pending job to survive, got %+v", remaining)
	}
}

func TestCleanRejectsNonTerminalStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Clean(ctx, job.Processing, nil)
	if err != qc.ErrBadCleanStatus {
		t.Fatalf("expected ErrBadCleanStatus, got %v", err)
	}
}
