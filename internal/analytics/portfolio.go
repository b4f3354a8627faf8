package analytics

import (
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectSummary is the per-project input of the portfolio roll-up.
type ProjectSummary struct {
	ProjectID      uuid.UUID           `json:"project_id"`
	Name           string              `json:"name"`
	Status         model.ProjectStatus `json:"status"`
	HealthScore    int                 `json:"health_score"`
	AtRisk         bool                `json:"at_risk"`
	Budget         decimal.Decimal     `json:"budget"`
	ActualCost     decimal.Decimal     `json:"actual_cost"`
	TasksTotal     int                 `json:"tasks_total"`
	TasksCompleted int                 `json:"tasks_completed"`
}

type Portfolio struct {
	ProjectCount          int              `json:"project_count"`
	AverageHealthScore    float64          `json:"average_health_score"`
	AtRiskCount           int              `json:"at_risk_count"`
	TotalBudget           decimal.Decimal  `json:"total_budget"`
	TotalActualCost       decimal.Decimal  `json:"total_actual_cost"`
	BudgetVariance        decimal.Decimal  `json:"budget_variance"`
	CompletedProjects     int              `json:"completed_projects"`
	ProjectCompletionRate float64          `json:"project_completion_rate"`
	TaskCompletionRate    float64          `json:"task_completion_rate"`
	Projects              []ProjectSummary `json:"projects"`
}

// Rollup aggregates summaries that the caller has already filtered by access.
func Rollup(summaries []ProjectSummary) Portfolio {
	p := Portfolio{
		TotalBudget:     decimal.Zero,
		TotalActualCost: decimal.Zero,
		Projects:        summaries,
	}
	if p.Projects == nil {
		p.Projects = []ProjectSummary{}
	}

	healthSum, tasks, done := 0, 0, 0
	for _, s := range summaries {
		p.ProjectCount++
		healthSum += s.HealthScore
		if s.AtRisk {
			p.AtRiskCount++
		}
		if s.Status == model.ProjectCompleted {
			p.CompletedProjects++
		}
		p.TotalBudget = p.TotalBudget.Add(s.Budget)
		p.TotalActualCost = p.TotalActualCost.Add(s.ActualCost)
		tasks += s.TasksTotal
		done += s.TasksCompleted
	}
	p.BudgetVariance = p.TotalBudget.Sub(p.TotalActualCost)

	if p.ProjectCount > 0 {
		p.AverageHealthScore = round2(float64(healthSum) / float64(p.ProjectCount))
		p.ProjectCompletionRate = round2(float64(p.CompletedProjects) / float64(p.ProjectCount) * 100)
	}
	if tasks > 0 {
		p.TaskCompletionRate = round2(float64(done) / float64(tasks) * 100)
	}
	return p
}
