package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/infra/queue"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	TriggerAPI   = "api"
	TriggerBatch = "batch"
)

type SnapshotService interface {
	// Create records the project's metrics for date (today when nil). A second
	// call for the same day overwrites the first.
	Create(ctx context.Context, projectID uuid.UUID, date *time.Time, trigger string) (*model.ProjectMetricsSnapshot, error)
	// Trend returns the last days of snapshots up to today, oldest first.
	Trend(ctx context.Context, projectID uuid.UUID, days int) ([]model.ProjectMetricsSnapshot, error)
	// SnapshotActive records today's snapshot for every open project.
	SnapshotActive(ctx context.Context) (int, error)
}

type snapshotService struct {
	r         repo.SnapshotRepo
	projects  repo.ProjectRepo
	analytics AnalyticsService
	pub       queue.Publisher
	trendDays int
	now       Clock
	log       *zap.Logger
}

func NewSnapshotService(r repo.SnapshotRepo, projects repo.ProjectRepo, a AnalyticsService, pub queue.Publisher, trendDays int, now Clock, log *zap.Logger) SnapshotService {
	if trendDays <= 0 {
		trendDays = 30
	}
	return &snapshotService{
		r:         r,
		projects:  projects,
		analytics: a,
		pub:       pub,
		trendDays: trendDays,
		now:       now,
		log:       log,
	}
}

// SnapshotCreatedEvent is published after every snapshot write.
type SnapshotCreatedEvent struct {
	SnapshotID   uuid.UUID `json:"snapshot_id"`
	ProjectID    uuid.UUID `json:"project_id"`
	SnapshotDate string    `json:"snapshot_date"`
	HealthScore  int       `json:"health_score"`
	Trigger      string    `json:"trigger"`
}

func (s *snapshotService) Create(ctx context.Context, projectID uuid.UUID, date *time.Time, trigger string) (*model.ProjectMetricsSnapshot, error) {
	today := model.Day(s.now())
	asOf := today
	if date != nil {
		asOf = model.Day(*date)
	}
	if asOf.After(today) {
		return nil, invalid("date", "must not be in the future")
	}

	m, err := s.analytics.ComputeAsOf(ctx, projectID, asOf, "")
	if err != nil {
		return nil, err
	}

	snap := FromMetrics(m, asOf)
	if err := s.r.Upsert(ctx, snap); err != nil {
		s.log.Sugar().Errorw("snapshot upsert failed", "project_id", projectID, "date", asOf.Format(model.DateLayout), "err", err)
		return nil, fmt.Errorf("store snapshot: %w", err)
	}
	metrics.RecordSnapshot(trigger)

	event := SnapshotCreatedEvent{
		SnapshotID:   snap.ID,
		ProjectID:    projectID,
		SnapshotDate: asOf.Format(model.DateLayout),
		HealthScore:  snap.HealthScore,
		Trigger:      trigger,
	}
	if err := s.pub.Publish(ctx, queue.RoutingSnapshotCreated, event); err != nil {
		// best effort, the snapshot is already stored
		s.log.Sugar().Warnw("publish snapshot event failed", "project_id", projectID, "err", err)
	}
	return snap, nil
}

// FromMetrics freezes computed metrics into a snapshot row for date.
func FromMetrics(m *analytics.Metrics, date time.Time) *model.ProjectMetricsSnapshot {
	return &model.ProjectMetricsSnapshot{
		ProjectID:          m.ProjectID,
		SnapshotDate:       model.Day(date),
		TasksTotal:         m.Tasks.Total,
		TasksCompleted:     m.Tasks.Completed,
		TasksOverdue:       m.Tasks.Overdue,
		ProgressPercentage: m.ProgressPercentage,
		HealthScore:        m.HealthScore,
		Velocity:           m.Velocity,
		PlannedValue:       m.EVM.PlannedValue,
		EarnedValue:        m.EVM.EarnedValue,
		ActualCost:         m.EVM.ActualCost,
		CostVariance:       m.EVM.CostVariance,
		ScheduleVariance:   m.EVM.ScheduleVariance,
		CPI:                m.EVM.CPI,
		SPI:                m.EVM.SPI,
		Extra: datatypes.JSONMap{
			"estimate_at_completion":  m.EVM.EstimateAtCompletion.String(),
			"estimate_to_complete":    m.EVM.EstimateToComplete.String(),
			"variance_at_completion":  m.EVM.VarianceAtCompletion.String(),
			"expected_progress":       m.ExpectedProgress,
			"budget_consumed_percent": m.BudgetConsumedPercent,
			"at_risk":                 m.AtRisk,
		},
	}
}

func (s *snapshotService) Trend(ctx context.Context, projectID uuid.UUID, days int) ([]model.ProjectMetricsSnapshot, error) {
	if days <= 0 {
		days = s.trendDays
	}
	to := model.Day(s.now())
	from := to.AddDate(0, 0, -(days - 1))
	return s.r.ListRange(ctx, projectID, from, to)
}

func (s *snapshotService) SnapshotActive(ctx context.Context) (int, error) {
	projects, err := s.projects.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active projects: %w", err)
	}
	written := 0
	for _, p := range projects {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if _, err := s.Create(ctx, p.ID, nil, TriggerBatch); err != nil {
			s.log.Sugar().Errorw("batch snapshot failed", "project_id", p.ID, "code", p.Code, "err", err)
			continue
		}
		written++
	}
	s.log.Sugar().Infow("batch snapshot finished", "projects", len(projects), "written", written)
	return written, nil
}
