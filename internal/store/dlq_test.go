package store_test

import (
	"context"
	"testing"
	"time"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

func TestDLQListAndRetry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	zero := uint32(0)
	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "job-1", Command: "false", MaxRetries: &zero}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AcquireNextJob(ctx, "worker-1", time.Minute); err != nil {
		t.Fatal(err)
	}
	if err := s.FailJob(ctx, "job-1", "worker-1", "boom"); err != nil {
		t.Fatal(err)
	}

	dead, err := s.DLQList(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(dead) != 1 || dead[0].ID != "job-1" {
		t.Fatalf("expected job-1 in the dead-letter queue, got %+v", dead)
	}

	ok, err := s.DLQRetry(ctx, "job-1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected first retry to report true")
	}

	got, err := s.Get(ctx, "job-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != job.Pending {
		t.Fatalf("expected Pending after retry, got %v", got.Status)
	}
	if got.Attempts != 0 {
		t.Fatalf("expected attempts reset to 0, got %d", got.Attempts)
	}

	// Idempotence: retrying an already-revived job does nothing.
	ok, err = s.DLQRetry(ctx, "job-1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected second retry to report false")
	}
}

func TestDLQRetryUnknownJob(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.DLQRetry(ctx, "does-not-exist")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected false for a nonexistent job")
	}
}
