package main

import (
	"fmt"

	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var alertsProject string

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Evaluate budget, health and schedule alerts",
	Long: `Evaluate alert conditions for one project (--project) or every open project.
Alerts already raised today are skipped.`,
	RunE: withContainer(func(cmd *cobra.Command, _ []string, inj *do.Injector) error {
		alerts := do.MustInvoke[service.AlertService](inj)

		if alertsProject == "" {
			n, err := alerts.EvaluateActive(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %d alerts\n", n)
			return nil
		}

		id, err := uuid.Parse(alertsProject)
		if err != nil {
			return fmt.Errorf("invalid project id %q: %w", alertsProject, err)
		}
		raised, err := alerts.Evaluate(cmd.Context(), id)
		if err != nil {
			return err
		}
		for _, a := range raised {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", a.ProjectCode, a.Kind, a.Message)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published %d alerts\n", len(raised))
		return nil
	}),
}

func init() {
	alertsCmd.Flags().StringVar(&alertsProject, "project", "", "project id, all open projects when empty")
}
