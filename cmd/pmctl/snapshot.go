package main

import (
	"fmt"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

var (
	snapshotAll     bool
	snapshotProject string
	snapshotDate    string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Record metrics snapshots",
	Long: `Record today's metrics snapshot for one project (--project) or for every
open project (--all). Running it twice on the same day overwrites the first run.`,
	RunE: withContainer(func(cmd *cobra.Command, _ []string, inj *do.Injector) error {
		snapshots := do.MustInvoke[service.SnapshotService](inj)

		if snapshotAll {
			n, err := snapshots.SnapshotActive(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %d snapshots\n", n)
			return nil
		}

		if snapshotProject == "" {
			return fmt.Errorf("either --all or --project is required")
		}
		id, err := uuid.Parse(snapshotProject)
		if err != nil {
			return fmt.Errorf("invalid project id %q: %w", snapshotProject, err)
		}
		var date *time.Time
		if snapshotDate != "" {
			d, err := model.ParseDate(snapshotDate)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", snapshotDate, err)
			}
			date = &d
		}
		s, err := snapshots.Create(cmd.Context(), id, date, service.TriggerBatch)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s for %s (health %d)\n", s.ID, s.SnapshotDate.Format(model.DateLayout), s.HealthScore)
		return nil
	}),
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotAll, "all", false, "snapshot every open project")
	snapshotCmd.Flags().StringVar(&snapshotProject, "project", "", "project id")
	snapshotCmd.Flags().StringVar(&snapshotDate, "date", "", "snapshot date (YYYY-MM-DD), defaults to today")
}
