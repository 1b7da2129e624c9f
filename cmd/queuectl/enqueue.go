package main

import (
	"fmt"

	"github.com/spf13/cobra"

	qc "github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/internal/clock"
)

func newEnqueueCmd() *cobra.Command {
	var (
		dbPath     string
		command    string
		id         string
		maxRetries int
		priority   int
		runAt      string
		seedConfig string
	)

	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Enqueue a new job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if command == "" {
				return fmt.Errorf("--command is required")
			}

			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			if seedConfig != "" {
				if err := applySeedConfig(ctx, s, seedConfig); err != nil {
					return err
				}
			}

			req := qc.NewJobRequest{ID: id, Command: command, Priority: int32(priority)}
			if cmd.Flags().Changed("max-retries") {
				n := uint32(maxRetries)
				req.MaxRetries = &n
			}
			if runAt != "" {
				t, err := clock.ParseISO(runAt)
				if err != nil {
					return fmt.Errorf("--run-at: %w", err)
				}
				req.RunAt = t
			}

			jb, err := s.Enqueue(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(cmd, jb)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")
	cmd.Flags().StringVar(&command, "command", "", "shell command to run (required)")
	cmd.Flags().StringVar(&id, "id", "", "explicit job id (default: generated)")
	cmd.Flags().IntVar(&maxRetries, "max-retries", 0, "override the configured max_retries")
	cmd.Flags().IntVar(&priority, "priority", 0, "acquisition priority, higher runs first")
	cmd.Flags().StringVar(&runAt, "run-at", "", "ISO timestamp (YYYY-MM-DDTHH:MM:SSZ) before which the job is not eligible")
	cmd.Flags().StringVar(&seedConfig, "seed-config", "", "YAML file of initial tuning overrides, applied once before enqueuing")

	return cmd
}
