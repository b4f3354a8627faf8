// Package analytics holds the pure metric calculators. Nothing here touches
// storage or the wall clock: every function takes the records and an asOf date.
package analytics

import (
	"math"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaskCounts tallies a project's tasks as of a date. Tasks completed after
// that date count as open.
type TaskCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Open      int `json:"open"`
	Overdue   int `json:"overdue"`
}

func CountTasks(tasks []model.Task, asOf time.Time) TaskCounts {
	var c TaskCounts
	for i := range tasks {
		c.Total++
		if tasks[i].DoneAsOf(asOf) {
			c.Completed++
			continue
		}
		c.Open++
		if tasks[i].Overdue(asOf) {
			c.Overdue++
		}
	}
	return c
}

// ProgressPercentage is completed/total*100 as of asOf, rounded to two places;
// 0 without tasks.
func ProgressPercentage(tasks []model.Task, asOf time.Time) decimal.Decimal {
	total, done := 0, 0
	for i := range tasks {
		total++
		if tasks[i].DoneAsOf(asOf) {
			done++
		}
	}
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(done)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
}

// PlannedFraction is elapsed/planned days clamped to [0, 1]; 0 when the
// planned duration is not positive.
func PlannedFraction(start, end, asOf time.Time) decimal.Decimal {
	planned := model.DaysBetween(start, end)
	if planned <= 0 {
		return decimal.Zero
	}
	elapsed := model.DaysBetween(start, asOf)
	if elapsed <= 0 {
		return decimal.Zero
	}
	if elapsed >= planned {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(int64(elapsed)).Div(decimal.NewFromInt(int64(planned)))
}

// ExpectedProgress is the linear time-based progress target in percent.
func ExpectedProgress(start, end, asOf time.Time) float64 {
	return round2(PlannedFraction(start, end, asOf).Mul(hundred).InexactFloat64())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
