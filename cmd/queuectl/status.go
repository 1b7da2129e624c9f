package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/job"
)

func newStatusCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show an aggregate snapshot of queue state",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			st, err := s.Status(ctx)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				counts := make(map[string]int64, len(st.Counts))
				for k, v := range st.Counts {
					counts[k.String()] = v
				}
				return printJSON(cmd, map[string]any{
					"total":          st.Total,
					"counts":         counts,
					"active_workers": st.ActiveWorkers,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", st.Total)
			for _, state := range []job.Status{job.Pending, job.Processing, job.Completed, job.Failed, job.Dead} {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %d\n", state, st.Counts[state])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "active_workers: %d\n", st.ActiveWorkers)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")
	jsonFlag(cmd)

	return cmd
}
