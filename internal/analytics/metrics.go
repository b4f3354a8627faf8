package analytics

import (
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input is everything the calculators read for one project.
type Input struct {
	Project *model.Project
	Tasks   []model.Task
	Costs   []model.ProjectCost
	AsOf    time.Time
}

type Options struct {
	VelocityWindowWeeks int
	RiskThreshold       int
	BudgetThresholds    []int
}

func DefaultOptions() Options {
	return Options{
		VelocityWindowWeeks: DefaultVelocityWindowWeeks,
		RiskThreshold:       DefaultRiskThreshold,
		BudgetThresholds:    DefaultBudgetThresholds,
	}
}

// Metrics is the fully computed view of one project. PredictedCompletionDate
// is null when no forecast can be made.
type Metrics struct {
	ProjectID   uuid.UUID           `json:"project_id"`
	ProjectCode string              `json:"project_code"`
	ProjectName string              `json:"project_name"`
	Status      model.ProjectStatus `json:"status"`
	AsOf        string              `json:"as_of"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`

	Tasks              TaskCounts      `json:"tasks"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	ExpectedProgress   float64         `json:"expected_progress"`
	HealthScore        int             `json:"health_score"`
	Health             Health          `json:"health"`
	Velocity           float64         `json:"velocity"`
	VelocityWindow     int             `json:"velocity_window_weeks"`

	EVM                     EVM     `json:"evm"`
	BudgetConsumedPercent   float64 `json:"budget_consumed_percent"`
	BudgetThresholdsCrossed []int   `json:"budget_thresholds_crossed"`

	PredictedCompletionDate *string `json:"predicted_completion_date"`
	ForecastAvailable       bool    `json:"forecast_available"`
	DaysRemaining           int     `json:"days_remaining"`
	AtRisk                  bool    `json:"at_risk"`
}

// Compute runs every calculator over in. It is deterministic for a given input.
func Compute(in Input, opts Options) Metrics {
	p := in.Project
	asOf := model.Day(in.AsOf)

	counts := CountTasks(in.Tasks, asOf)
	progress := ProgressPercentage(in.Tasks, asOf)
	ac := ActualCost(in.Costs, asOf)
	health := ComputeHealth(p, in.Tasks, ac, asOf)
	velocity := Velocity(in.Tasks, asOf, opts.VelocityWindowWeeks)
	evm := EarnedValue(p.Budget, progress, PlannedFraction(p.StartDate, p.EndDate, asOf), ac)
	predicted := PredictCompletionDate(counts.Open, velocity, asOf)

	m := Metrics{
		ProjectID:               p.ID,
		ProjectCode:             p.Code,
		ProjectName:             p.Name,
		Status:                  p.Status,
		AsOf:                    asOf.Format(model.DateLayout),
		StartDate:               model.Day(p.StartDate).Format(model.DateLayout),
		EndDate:                 model.Day(p.EndDate).Format(model.DateLayout),
		Tasks:                   counts,
		ProgressPercentage:      progress,
		ExpectedProgress:        ExpectedProgress(p.StartDate, p.EndDate, asOf),
		HealthScore:             health.Score,
		Health:                  health,
		Velocity:                velocity,
		VelocityWindow:          opts.VelocityWindowWeeks,
		EVM:                     evm,
		BudgetConsumedPercent:   BudgetConsumedPercent(p.Budget, ac),
		BudgetThresholdsCrossed: BudgetThresholdsCrossed(p.Budget, ac, opts.BudgetThresholds),
		ForecastAvailable:       predicted != nil,
		DaysRemaining:           model.DaysBetween(asOf, p.EndDate),
		AtRisk:                  AtRisk(health.Score, predicted, p.EndDate, opts.RiskThreshold),
	}
	if predicted != nil {
		s := predicted.Format(model.DateLayout)
		m.PredictedCompletionDate = &s
	}
	return m
}

// Summary reduces metrics to the portfolio input.
func (m Metrics) Summary() ProjectSummary {
	return ProjectSummary{
		ProjectID:      m.ProjectID,
		Name:           m.ProjectName,
		Status:         m.Status,
		HealthScore:    m.HealthScore,
		AtRisk:         m.AtRisk,
		Budget:         m.EVM.Budget,
		ActualCost:     m.EVM.ActualCost,
		TasksTotal:     m.Tasks.Total,
		TasksCompleted: m.Tasks.Completed,
	}
}
