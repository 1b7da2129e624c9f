package store_test

import (
	"context"
	"testing"

	"github.com/queuectl/queuectl/internal/clock"
	"github.com/queuectl/queuectl/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), "file::memory:?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// forceRunNow rewrites a job's run_at to the current instant, bypassing
// the backoff delay FailJob scheduled, so a test can re-acquire it
// immediately instead of sleeping out the delay.
func forceRunNow(ctx context.Context, s *store.Store, id string) error {
	_, err := s.DB().NewUpdate().
		Table("jobs").
		Where("id = ?", id).
		Set("run_at = ?", clock.FormatISO(clock.Now())).
		Exec(ctx)
	return err
}
