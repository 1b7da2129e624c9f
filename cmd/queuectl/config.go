package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get or set a queue tuning key",
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the current value of a tuning key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			val, err := s.GetConfig(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"key": args[0], "value": val})
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a tuning key to a new value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ctx, cancel, err := openStore(dbPath)
			if err != nil {
				return err
			}
			defer cancel()
			defer s.Close()

			if err := s.SetConfig(ctx, args[0], args[1]); err != nil {
				return err
			}
			return printJSON(cmd, map[string]any{"key": args[0], "value": args[1]})
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the queue database")

	return cmd
}
