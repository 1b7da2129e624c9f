package store_test

import (
	"context"
	"errors"
	"testing"

	qc "github.com/queuectl/queuectl"
)

func TestConfigDefaultsAreSeeded(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := map[string]int{
		"max_retries":      3,
		"backoff_base":     2,
		"lease_seconds":    60,
		"poll_interval_ms": 500,
		"timeout_seconds":  300,
	}
	for key, expect := range want {
		got, err := s.GetConfigInt(ctx, key)
		if err != nil {
			t.Fatalf("GetConfigInt(%q): %v", key, err)
		}
		if got != expect {
			t.Fatalf("expected %s=%d, got %d", key, expect, got)
		}
	}
}

func TestSetConfigUpserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetConfig(ctx, "max_retries", "9"); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetConfigInt(ctx, "max_retries")
	if err != nil {
		t.Fatal(err)
	}
	if got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestSetConfigRejectsNonPositiveBackoffBase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, bad := range []string{"0", "-1", "not-a-number"} {
		if err := s.SetConfig(ctx, "backoff_base", bad); !errors.Is(err, qc.ErrInvalidConfigValue) {
			t.Fatalf("SetConfig(backoff_base, %q): expected ErrInvalidConfigValue, got %v", bad, err)
		}
	}

	got, err := s.GetConfigInt(ctx, "backoff_base")
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Fatalf("expected rejected writes to leave the seeded default (2) in place, got %d", got)
	}
}

func TestGetConfigUnknownKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetConfig(ctx, "does-not-exist")
	if err != qc.ErrUnknownConfigKey {
		t.Fatalf("expected ErrUnknownConfigKey, got %v", err)
	}
}
