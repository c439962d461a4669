package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"direct-ads/db/migrations"
	"direct-ads/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrated from version %d to %d\n", from, migrations.Version)
		return nil
	},
}
