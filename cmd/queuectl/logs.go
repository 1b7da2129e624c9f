package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogsCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "logs JOB_ID",
		Short: "Show execution log entries for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			logs, err := s.GetLogs(ctx, args[0], limit)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return printJSON(cmd, logs)
			}
			for _, l := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] exit=%d\n", l.CreatedAt.Format("2006-01-02T15:04:05Z"), l.ExitCode)
				if l.Stdout != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  stdout: %s\n", clampCell(l.Stdout))
				}
				if l.Stderr != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  stderr: %s\n", clampCell(l.Stderr))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of log entries to return, most recent first (0 means no limit)")
	jsonFlag(cmd)

	return cmd
}
