package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultBudgetThresholds are the consumed-budget alert levels in percent.
var DefaultBudgetThresholds = []int{75, 90, 100}

// BudgetConsumedPercent is actual/budget*100; 0 for a non-positive budget.
func BudgetConsumedPercent(budget, actualCost decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	return round2(actualCost.Div(budget).Mul(hundred).InexactFloat64())
}

// BudgetThresholdsCrossed returns, ascending, every threshold the consumed
// percentage has reached.
func BudgetThresholdsCrossed(budget, actualCost decimal.Decimal, thresholds []int) []int {
	if !budget.IsPositive() {
		return []int{}
	}
	consumed := actualCost.Div(budget).Mul(hundred)
	crossed := make([]int, 0, len(thresholds))
	for _, t := range thresholds {
		if consumed.GreaterThanOrEqual(decimal.NewFromInt(int64(t))) {
			crossed = append(crossed, t)
		}
	}
	sort.Ints(crossed)
	return crossed
}
