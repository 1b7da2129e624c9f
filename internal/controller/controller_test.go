package controller

import (
	"os"
	"path/filepath"
	"testing"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestStopWithoutPidFileIsNoOp(t *testing.T) {
	chdirTemp(t)
	if err := Stop(); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestStartRefusesWhilePidFileExists(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll(pidDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pidFile(), []byte("123"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Start(1, "", 0); err != ErrControllerRunning {
		t.Fatalf("expected ErrControllerRunning, got %v", err)
	}
}

func TestStopRemovesPidFiles(t *testing.T) {
	chdirTemp(t)
	if err := os.MkdirAll(pidDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pidFile(), []byte("123"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(childrenFile(), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Stop(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(pidFile()); !os.IsNotExist(err) {
		t.Fatal("expected pid file to be removed")
	}
	if _, err := os.Stat(filepath.Join(pidDir, "children.json")); !os.IsNotExist(err) {
		t.Fatal("expected children file to be removed")
	}
}
