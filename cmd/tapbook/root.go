package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tapbook",
		Short:         "TapBook serves link-in-bio pages for small businesses",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, serve.
			if len(args) == 0 {
				return runServe(cmd.Context())
			}
			return cmd.Help()
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
