package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	qc "github.com/queuectl/queuectl"
)

func newDLQListCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "dlq-list",
		Short: "List jobs in the dead-letter queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			jobs, err := s.DLQList(ctx)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return printJSON(cmd, jobs)
			}
			printJobsTable(os.Stdout, jobs)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")
	jsonFlag(cmd)

	return cmd
}

func newDLQRetryCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "dlq-retry JOB_ID",
		Short: "Revive a dead-lettered job back to pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			ok, err := s.DLQRetry(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", qc.ErrNotDead, args[0])
			}
			return printJSON(cmd, map[string]any{"id": args[0], "retried": true})
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")

	return cmd
}
