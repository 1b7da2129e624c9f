// Package controller spawns and supervises queuectl-worker child
// processes from the CLI's worker-start/worker-stop commands.
//
// Grounded line-for-line on original_source/queuectl/worker.py's
// start_controller/stop_controller: the same two-file PID-tracking
// design (.queuectl/controller.pid, .queuectl/children.json), the same
// refusal to start a second controller while the pid file exists, and
// signal-based shutdown expressed as a build-tagged file pair
// (signal_unix.go / signal_windows.go) the way the original expresses
// its os.name == "nt" branches. On POSIX children receive SIGTERM; on
// Windows a SIGTERM is attempted through os.Process.Signal and, when
// that fails, the child's process tree is killed with taskkill. No
// CTRL_BREAK_EVENT is sent.
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// ErrControllerRunning is returned by Start when a controller pid file
// already exists (SPEC_FULL.md §4.10 "Controller conflict").
var ErrControllerRunning = errors.New("controller: already running")

const pidDir = ".queuectl"

func pidFile() string      { return filepath.Join(pidDir, "controller.pid") }
func childrenFile() string { return filepath.Join(pidDir, "children.json") }

// Start spawns count copies of the worker binary re-invoked as
// "queuectl-worker --db dbPath [--retention DURATION]", records their
// PIDs, and writes both pid files. It refuses to run while a
// controller pid file already exists. retention of 0 disables the
// per-worker retention cleaner (SPEC_FULL.md §4.9.2).
func Start(count int, dbPath string, retention time.Duration) ([]int, error) {
	if err := os.MkdirAll(pidDir, 0o755); err != nil {
		return nil, fmt.Errorf("controller: create pid dir: %w", err)
	}
	if _, err := os.Stat(pidFile()); err == nil {
		return nil, ErrControllerRunning
	}

	if err := os.WriteFile(pidFile(), []byte(fmt.Sprintf("%d", os.Getpid())), 0o644); err != nil {
		return nil, fmt.Errorf("controller: write pid file: %w", err)
	}

	children, err := spawnChildren(count, dbPath, retention)
	if err != nil {
		_ = os.Remove(pidFile())
		return nil, err
	}

	data, err := json.Marshal(children)
	if err != nil {
		return nil, fmt.Errorf("controller: marshal children: %w", err)
	}
	if err := os.WriteFile(childrenFile(), data, 0o644); err != nil {
		return nil, fmt.Errorf("controller: write children file: %w", err)
	}

	return children, nil
}

func spawnChildren(count int, dbPath string, retention time.Duration) ([]int, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("controller: locate own binary: %w", err)
	}
	workerBin := filepath.Join(filepath.Dir(self), workerBinaryName())

	pids := make([]int, 0, count)
	for i := 0; i < count; i++ {
		args := []string{}
		if dbPath != "" {
			args = append(args, "--db", dbPath)
		}
		if retention > 0 {
			args = append(args, "--retention", retention.String())
		}
		cmd := exec.Command(workerBin, args...)
		cmd.Stdout = nil
		cmd.Stderr = nil
		applyChildProcAttr(cmd)
		if err := cmd.Start(); err != nil {
			return pids, fmt.Errorf("controller: spawn worker %d: %w", i, err)
		}
		pids = append(pids, cmd.Process.Pid)
	}
	return pids, nil
}

// Stop forwards a termination signal to every recorded child, then
// removes both pid files. It is a no-op (not an error) if no controller
// pid file exists.
func Stop() error {
	if _, err := os.Stat(pidFile()); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	var children []int
	if data, err := os.ReadFile(childrenFile()); err == nil {
		_ = json.Unmarshal(data, &children)
	}

	for _, pid := range children {
		terminateChild(pid)
	}

	_ = os.Remove(pidFile())
	_ = os.Remove(childrenFile())
	return nil
}
