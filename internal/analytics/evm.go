package analytics

import (
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/shopspring/decimal"
)

// EVM carries the earned value figures of a project. Money is rounded to
// cents and indices to four places.
type EVM struct {
	Budget           decimal.Decimal `json:"budget"`
	PlannedValue     decimal.Decimal `json:"planned_value"`
	EarnedValue      decimal.Decimal `json:"earned_value"`
	ActualCost       decimal.Decimal `json:"actual_cost"`
	CostVariance     decimal.Decimal `json:"cost_variance"`
	ScheduleVariance decimal.Decimal `json:"schedule_variance"`
	CPI              decimal.Decimal `json:"cpi"`
	SPI              decimal.Decimal `json:"spi"`

	EstimateAtCompletion decimal.Decimal `json:"estimate_at_completion"`
	EstimateToComplete   decimal.Decimal `json:"estimate_to_complete"`
	VarianceAtCompletion decimal.Decimal `json:"variance_at_completion"`
}

// ActualCost sums the ledger entries dated on or before asOf.
func ActualCost(costs []model.ProjectCost, asOf time.Time) decimal.Decimal {
	day := model.Day(asOf)
	total := decimal.Zero
	for i := range costs {
		if model.Day(costs[i].Date).After(day) {
			continue
		}
		total = total.Add(costs[i].Amount)
	}
	return total
}

// EarnedValue derives the EVM figures from budget, progress (percent),
// planned fraction of elapsed time and actual cost.
func EarnedValue(budget, progressPct, plannedFraction, actualCost decimal.Decimal) EVM {
	one := decimal.NewFromInt(1)

	pv := budget.Mul(plannedFraction).Round(2)
	ev := budget.Mul(progressPct).Div(hundred).Round(2)
	ac := actualCost.Round(2)

	cpi := one
	if !ac.IsZero() {
		cpi = ev.Div(ac).Round(4)
	}
	spi := one
	if !pv.IsZero() {
		spi = ev.Div(pv).Round(4)
	}

	eac := budget
	if cpi.IsPositive() {
		eac = budget.Div(cpi).Round(2)
	}

	return EVM{
		Budget:               budget,
		PlannedValue:         pv,
		EarnedValue:          ev,
		ActualCost:           ac,
		CostVariance:         ev.Sub(ac),
		ScheduleVariance:     ev.Sub(pv),
		CPI:                  cpi,
		SPI:                  spi,
		EstimateAtCompletion: eac,
		EstimateToComplete:   eac.Sub(ac),
		VarianceAtCompletion: budget.Sub(eac),
	}
}

// ProjectEVM is EarnedValue fed from a project's records.
func ProjectEVM(p *model.Project, tasks []model.Task, costs []model.ProjectCost, asOf time.Time) EVM {
	return EarnedValue(
		p.Budget,
		ProgressPercentage(tasks, asOf),
		PlannedFraction(p.StartDate, p.EndDate, asOf),
		ActualCost(costs, asOf),
	)
}
