package main

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/tapbook/internal/migrate"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Print the SQL schema to run by hand",
		Long: "Print the businesses table schema. DDL is not executed from here: " +
			"copy the block into your database SQL editor and run it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate.Print(cmd.OutOrStdout())
		},
	}
}
