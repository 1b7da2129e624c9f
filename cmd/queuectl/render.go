package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/job"
)

const maxCellRunes = 80

// printJSON writes v to stdout as indented JSON, the --json branch of
// every read command's renderer.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// jsonFlag registers the shared --json flag on a read command.
func jsonFlag(cmd *cobra.Command) *bool {
	return cmd.Flags().Bool("json", false, "output JSON instead of a table")
}

// clampCell truncates s to maxCellRunes for plain-table rendering.
func clampCell(s string) string {
	if utf8.RuneCountInString(s) <= maxCellRunes {
		return s
	}
	r := []rune(s)
	return string(r[:maxCellRunes])
}

func printJobsTable(out *os.File, jobs []*job.Job) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tATTEMPTS\tPRIORITY\tRUN_AT\tCOMMAND")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d\t%s\t%s\n",
			clampCell(j.ID),
			j.Status,
			j.Attempts, j.MaxRetries,
			j.Priority,
			j.RunAt.Format("2006-01-02T15:04:05Z"),
			clampCell(j.Command),
		)
	}
	w.Flush()
}
