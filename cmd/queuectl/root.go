package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/internal/store"
)

var version = "0.1.0-dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "queuectl",
		Short: "Operate a durable, lease-based job queue",
	}

	root.AddCommand(newEnqueueCmd())
	root.AddCommand(newWorkerStartCmd())
	root.AddCommand(newWorkerStopCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newDLQListCmd())
	root.AddCommand(newDLQRetryCmd())
	root.AddCommand(newLogsCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, map[string]any{"version": version})
		},
	}
}

// openStore opens the durable store at dbPath (defaulting to
// queuectl.db in the current directory, as original_source/queuectl
// does) with a bounded context for the lifetime of one CLI invocation.
func openStore(dbPath string) (*store.Store, context.Context, context.CancelFunc, error) {
	if dbPath == "" {
		dbPath = "queuectl.db"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s, err := store.Open(ctx, dbPath)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return s, ctx, cancel, nil
}
