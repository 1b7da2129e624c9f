package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/job"
)

func newListCmd() *cobra.Command {
	var (
		dbPath string
		state  string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, optionally filtered by state",
		RunE: func(cmd *cobra.Command, args []string) error {
			status := job.Unknown
			if state != "" {
				var err error
				status, err = job.ParseStatus(state)
				if err != nil {
					return fmt.Errorf("--state: %w", err)
				}
			}

			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			jobs, err := s.List(ctx, status, limit)
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
	cmd.Flags().StringVar(&state, "state", "", "filter by state (pending, processing, completed, failed, dead)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of jobs to return (0 means no limit)")
	jsonFlag(cmd)

	return cmd
}
