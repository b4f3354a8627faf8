package service

import (
	"context"
	"fmt"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/infra/queue"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	AlertBudgetThreshold = "budget_threshold"
	AlertLowHealth       = "low_health"
	AlertLateForecast    = "late_forecast"
)

// Deduper admits the first caller per key within its window.
type Deduper interface {
	AcquireOnce(ctx context.Context, key string) bool
	Release(ctx context.Context, key string)
}

type Alert struct {
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectCode string    `json:"project_code"`
	Kind        string    `json:"kind"`
	Threshold   int       `json:"threshold,omitempty"`
	Value       float64   `json:"value"`
	Date        string    `json:"date"`
	Message     string    `json:"message"`
}

func (a Alert) dedupKey() string {
	return fmt.Sprintf("%s:%s:%d:%s", a.ProjectID, a.Kind, a.Threshold, a.Date)
}

type AlertService interface {
	// Evaluate publishes the project's alerts that have not fired today and
	// returns them.
	Evaluate(ctx context.Context, projectID uuid.UUID) ([]Alert, error)
	EvaluateActive(ctx context.Context) (int, error)
}

type alertService struct {
	analytics AnalyticsService
	projects  repo.ProjectRepo
	dedup     Deduper
	pub       queue.Publisher
	threshold int
	log       *zap.Logger
}

func NewAlertService(a AnalyticsService, projects repo.ProjectRepo, dedup Deduper, pub queue.Publisher, riskThreshold int, log *zap.Logger) AlertService {
	if riskThreshold <= 0 {
		riskThreshold = analytics.DefaultRiskThreshold
	}
	return &alertService{
		analytics: a,
		projects:  projects,
		dedup:     dedup,
		pub:       pub,
		threshold: riskThreshold,
		log:       log,
	}
}

// Detect lists the alert conditions present in m. It has no side effects.
func Detect(m *analytics.Metrics, riskThreshold int) []Alert {
	base := Alert{ProjectID: m.ProjectID, ProjectCode: m.ProjectCode, Date: m.AsOf}

	alerts := make([]Alert, 0, len(m.BudgetThresholdsCrossed)+2)
	for _, t := range m.BudgetThresholdsCrossed {
		a := base
		a.Kind = AlertBudgetThreshold
		a.Threshold = t
		a.Value = m.BudgetConsumedPercent
		a.Message = fmt.Sprintf("%s has consumed %.2f%% of its budget (threshold %d%%)", m.ProjectCode, m.BudgetConsumedPercent, t)
		alerts = append(alerts, a)
	}
	if m.HealthScore < riskThreshold {
		a := base
		a.Kind = AlertLowHealth
		a.Threshold = riskThreshold
		a.Value = float64(m.HealthScore)
		a.Message = fmt.Sprintf("%s health score %d is below %d", m.ProjectCode, m.HealthScore, riskThreshold)
		alerts = append(alerts, a)
	}
	if m.PredictedCompletionDate != nil && *m.PredictedCompletionDate > m.EndDate {
		a := base
		a.Kind = AlertLateForecast
		a.Value = float64(m.DaysRemaining)
		a.Message = fmt.Sprintf("%s is forecast to finish on %s, after its end date %s", m.ProjectCode, *m.PredictedCompletionDate, m.EndDate)
		alerts = append(alerts, a)
	}
	return alerts
}

func (s *alertService) Evaluate(ctx context.Context, projectID uuid.UUID) ([]Alert, error) {
	m, err := s.analytics.ComputeAll(ctx, projectID, "")
	if err != nil {
		return nil, err
	}

	published := make([]Alert, 0)
	for _, a := range Detect(m, s.threshold) {
		if s.dedup != nil && !s.dedup.AcquireOnce(ctx, a.dedupKey()) {
			continue
		}
		if err := s.pub.Publish(ctx, queue.RoutingProjectAlert, a); err != nil {
			s.log.Sugar().Errorw("publish alert failed", "project_id", projectID, "kind", a.Kind, "err", err)
			if s.dedup != nil {
				s.dedup.Release(ctx, a.dedupKey())
			}
			return published, fmt.Errorf("publish alert: %w", err)
		}
		metrics.RecordAlert(a.Kind)
		published = append(published, a)
	}
	return published, nil
}

func (s *alertService) EvaluateActive(ctx context.Context) (int, error) {
	projects, err := s.projects.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active projects: %w", err)
	}
	total := 0
	for _, p := range projects {
		alerts, err := s.Evaluate(ctx, p.ID)
		total += len(alerts)
		if err != nil {
			s.log.Sugar().Errorw("alert evaluation failed", "project_id", p.ID, "code", p.Code, "err", err)
		}
	}
	s.log.Sugar().Infow("alert evaluation finished", "projects", len(projects), "published", total)
	return total, nil
}
