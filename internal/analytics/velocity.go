package analytics

import (
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
)

const DefaultVelocityWindowWeeks = 4

// Velocity is tasks completed per week over the trailing window ending at asOf.
func Velocity(tasks []model.Task, asOf time.Time, windowWeeks int) float64 {
	if windowWeeks <= 0 {
		return 0
	}
	end := model.Day(asOf)
	start := end.AddDate(0, 0, -7*windowWeeks)

	completed := 0
	for i := range tasks {
		t := &tasks[i]
		if !t.Done() || t.CompletedAt == nil {
			continue
		}
		day := model.Day(*t.CompletedAt)
		if day.After(start) && !day.After(end) {
			completed++
		}
	}
	return round2(float64(completed) / float64(windowWeeks))
}
