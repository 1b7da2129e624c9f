package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/internal/controller"
)

func newWorkerStartCmd() *cobra.Command {
	var (
		dbPath     string
		count      int
		retention  time.Duration
		seedConfig string
	)

	cmd := &cobra.Command{
		Use:   "worker-start",
		Short: "Start a controller that supervises worker processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedConfig != "" {
				s, ctx, cancel, err := openStore(dbPath)
				if err != nil {
					return err
				}
				if err := applySeedConfig(ctx, s, seedConfig); err != nil {
					cancel()
					s.Close()
					return err
				}
				cancel()
				s.Close()
			}

			pids, err := controller.Start(count, dbPath, retention)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"started": len(pids), "pids": pids})
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")
	cmd.Flags().IntVar(&count, "count", 1, "number of worker processes to start")
	cmd.Flags().DurationVar(&retention, "retention", 0, "if set, each worker periodically deletes completed/dead jobs older than this")
	cmd.Flags().StringVar(&seedConfig, "seed-config", "", "YAML file of initial tuning overrides, applied once before starting")

	return cmd
}

func newWorkerStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker-stop",
		Short: "Stop all supervised worker processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := controller.Stop(); err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"stopped": true})
		},
	}
}
