package analytics

import (
	"math"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/shopspring/decimal"
)

const (
	MaxSchedulePenalty = 30.0
	MaxBudgetPenalty   = 30.0
	MaxProgressPenalty = 20.0
	MaxTaskPenalty     = 20.0

	// points deducted per day past the end date
	overduePenaltyPerDay = 3.0
	// percentage points of lag tolerated before the progress penalty applies
	ProgressTolerance = 10.0
)

// Health is the 0-100 score together with the penalties that produced it.
type Health struct {
	Score           int     `json:"score"`
	SchedulePenalty float64 `json:"schedule_penalty"`
	BudgetPenalty   float64 `json:"budget_penalty"`
	ProgressPenalty float64 `json:"progress_penalty"`
	TaskPenalty     float64 `json:"task_penalty"`
}

// HealthScore returns the composite score in [0, 100].
func HealthScore(p *model.Project, tasks []model.Task, actualCost decimal.Decimal, asOf time.Time) int {
	return ComputeHealth(p, tasks, actualCost, asOf).Score
}

func ComputeHealth(p *model.Project, tasks []model.Task, actualCost decimal.Decimal, asOf time.Time) Health {
	var h Health

	if overdue := model.DaysBetween(p.EndDate, asOf); overdue > 0 {
		h.SchedulePenalty = math.Min(MaxSchedulePenalty, float64(overdue)*overduePenaltyPerDay)
	}

	if p.Budget.IsPositive() && actualCost.GreaterThan(p.Budget) {
		over := actualCost.Sub(p.Budget).Div(p.Budget).Mul(hundred).InexactFloat64()
		h.BudgetPenalty = math.Min(MaxBudgetPenalty, over)
	}

	actual := ProgressPercentage(tasks, asOf).InexactFloat64()
	expected := ExpectedProgress(p.StartDate, p.EndDate, asOf)
	if behind := expected - actual; behind > ProgressTolerance {
		h.ProgressPenalty = math.Min(MaxProgressPenalty, behind)
	}

	counts := CountTasks(tasks, asOf)
	if counts.Total > 0 {
		pct := float64(counts.Overdue) / float64(counts.Total) * 100
		h.TaskPenalty = math.Min(MaxTaskPenalty, pct)
	}

	score := math.Floor(100 - h.SchedulePenalty - h.BudgetPenalty - h.ProgressPenalty - h.TaskPenalty)
	h.Score = int(math.Max(0, math.Min(100, score)))

	h.SchedulePenalty = round2(h.SchedulePenalty)
	h.BudgetPenalty = round2(h.BudgetPenalty)
	h.ProgressPenalty = round2(h.ProgressPenalty)
	h.TaskPenalty = round2(h.TaskPenalty)
	return h
}
