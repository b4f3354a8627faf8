package main

import (
	"github.com/bizplatform/pmcore/internal/bootstrap"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "pmctl",
	Short: "Batch and admin commands for pmcore",
	Long: `pmctl runs the scheduled jobs of pmcore (daily snapshots, alert evaluation)
and the admin chores that have no HTTP endpoint (users, tokens, migrations).`,
	SilenceUsage: true,
}

// withContainer builds the DI container for one command run and shuts it down after.
func withContainer(fn func(cmd *cobra.Command, args []string, inj *do.Injector) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		inj := bootstrap.BuildContainer()
		defer func() {
			if log, err := do.Invoke[*zap.Logger](inj); err == nil {
				_ = log.Sync()
			}
			_ = inj.Shutdown()
		}()
		return fn(cmd, args, inj)
	}
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(migrateCmd)
}
