package store_test

import (
	"context"
	"testing"
	"time"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

func TestGetMissingJobReturnsNilNil(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.Get(ctx, "does-not-exist")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "a", Command: "echo a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "b", Command: "echo b"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AcquireNextJob(ctx, "worker-1", time.Minute); err != nil {
		t.Fatal(err)
	}

	pending, err := s.List(ctx, job.Pending, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending job, got %d", len(pending))
	}

	all, err := s.List(ctx, job.Unknown, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 jobs total, got %d", len(all))
	}
}

func TestStatusAggregatesCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "a", Command: "echo a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "b", Command: "echo b"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AcquireNextJob(ctx, "worker-1", time.Minute); err != nil {
		t.Fatal(err)
	}

	st, err := s.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Total != 2 {
		t.Fatalf("expected total 2, got %d", st.Total)
	}
	if st.Counts[job.Pending] != 1 {
		t.Fatalf("expected 1 pending, got %d", st.Counts[job.Pending])
	}
	if st.Counts[job.Processing] != 1 {
		t.Fatalf("expected 1 processing, got %d", st.Counts[job.Processing])
	}
	if st.ActiveWorkers != 1 {
		t.Fatalf("expected 1 active worker, got %d", st.ActiveWorkers)
	}
}
