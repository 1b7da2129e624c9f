package store_test

import (
	"context"
	"strings"
	"testing"

	qc "github.com/queuectl/queuectl"
)

func TestLogExecutionAndGetLogs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "job-1", Command: "echo hi"}); err != nil {
		t.Fatal(err)
	}

	if err := s.LogExecution(ctx, "job-1", 0, "out-1", "err-1"); err != nil {
		t.Fatal(err)
	}
	if err := s.LogExecution(ctx, "job-1", 1, "out-2", "err-2"); err != nil {
		t.Fatal(err)
	}

	logs, err := s.GetLogs(ctx, "job-1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 log rows, got %d", len(logs))
	}
	if logs[0].ExitCode != 1 || logs[0].Stdout != "out-2" {
		t.Fatalf("expected most recent log first, got %+v", logs[0])
	}

	limited, err := s.GetLogs(ctx, "job-1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to be honored, got %d rows", len(limited))
	}
}

func TestLogExecutionClampsOversizedFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Enqueue(ctx, qc.NewJobRequest{ID: "job-1", Command: "echo hi"}); err != nil {
		t.Fatal(err)
	}

	huge := strings.Repeat("x", 70000)
	if err := s.LogExecution(ctx, "job-1", 0, huge, huge); err != nil {
		t.Fatal(err)
	}

	logs, err := s.GetLogs(ctx, "job-1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log row, got %d", len(logs))
	}
	if len(logs[0].Stdout) != 65535 {
		t.Fatalf("expected stdout clamped to 65535 runes, got %d", len(logs[0].Stdout))
	}
}
