package analytics

import (
	"math"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
)

const DefaultRiskThreshold = 60

// PredictCompletionDate projects the open tasks forward at the given velocity
// (tasks per week). It returns nil when velocity is zero: the forecast is
// unavailable, which is not the same as late.
func PredictCompletionDate(openTasks int, velocity float64, asOf time.Time) *time.Time {
	if velocity <= 0 {
		return nil
	}
	day := model.Day(asOf)
	if openTasks <= 0 {
		return &day
	}
	weeks := float64(openTasks) / velocity
	days := int(math.Ceil(weeks * 7))
	predicted := day.AddDate(0, 0, days)
	return &predicted
}

// AtRisk flags a project whose health is under threshold or whose forecast
// lands after its end date. An unavailable forecast alone does not flag it.
func AtRisk(healthScore int, predicted *time.Time, end time.Time, threshold int) bool {
	if healthScore < threshold {
		return true
	}
	return predicted != nil && model.Day(*predicted).After(model.Day(end))
}
