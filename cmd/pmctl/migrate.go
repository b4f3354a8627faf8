package main

import (
	"fmt"

	"github.com/bizplatform/pmcore/internal/infra/db"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: withContainer(func(cmd *cobra.Command, _ []string, inj *do.Injector) error {
		if err := db.Migrate(do.MustInvoke[*gorm.DB](inj)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	}),
}
