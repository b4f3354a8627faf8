package repo

import (
	"context"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnapshotRepo interface {
	// Upsert writes s, replacing any snapshot of the same project and day.
	// On return s holds the stored row, including its original id.
	Upsert(ctx context.Context, s *model.ProjectMetricsSnapshot) error
	// ListRange returns snapshots with from <= date <= to, oldest first.
	ListRange(ctx context.Context, projectID uuid.UUID, from, to time.Time) ([]model.ProjectMetricsSnapshot, error)
}

type snapshotRepo struct{ db *gorm.DB }

func NewSnapshotRepo(db *gorm.DB) SnapshotRepo {
	return &snapshotRepo{db: db}
}

var snapshotMetricColumns = []string{
	"tasks_total", "tasks_completed", "tasks_overdue",
	"progress_percentage", "health_score", "velocity",
	"planned_value", "earned_value", "actual_cost",
	"cost_variance", "schedule_variance", "cpi", "spi",
	"extra", "updated_at",
}

func (r *snapshotRepo) Upsert(ctx context.Context, s *model.ProjectMetricsSnapshot) error {
	s.SnapshotDate = model.Day(s.SnapshotDate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit("Project").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "snapshot_date"}},
			DoUpdates: clause.AssignmentColumns(snapshotMetricColumns),
		}).Create(s).Error
		if err != nil {
			return err
		}
		// on conflict the generated id was discarded; read back the surviving row
		var stored model.ProjectMetricsSnapshot
		if err := tx.Where("project_id = ? AND snapshot_date = ?", s.ProjectID, s.SnapshotDate).
			First(&stored).Error; err != nil {
			return err
		}
		*s = stored
		return nil
	})
}

func (r *snapshotRepo) ListRange(ctx context.Context, projectID uuid.UUID, from, to time.Time) ([]model.ProjectMetricsSnapshot, error) {
	snapshots := []model.ProjectMetricsSnapshot{}
	return snapshots, r.db.WithContext(ctx).
		Where("project_id = ? AND snapshot_date >= ? AND snapshot_date <= ?", projectID, model.Day(from), model.Day(to)).
		Order("snapshot_date ASC").
		Find(&snapshots).Error
}
