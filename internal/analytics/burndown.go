package analytics

import (
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
)

// Burndown aligns the ideal and actual remaining-task series on one date axis.
// ActualRemaining holds nil for days without a snapshot; gaps are never filled.
type Burndown struct {
	Dates           []string  `json:"dates"`
	IdealRemaining  []float64 `json:"ideal_remaining"`
	ActualRemaining []*int    `json:"actual_remaining"`
}

// BurndownSeries draws the ideal line from totalTasks at start to 0 at end and
// reads the actual line from snapshots.
func BurndownSeries(start, end time.Time, totalTasks int, snapshots []model.ProjectMetricsSnapshot) Burndown {
	start, end = model.Day(start), model.Day(end)
	n := model.DaysBetween(start, end) + 1
	if n <= 0 {
		return Burndown{Dates: []string{}, IdealRemaining: []float64{}, ActualRemaining: []*int{}}
	}

	byDay := make(map[string]int, len(snapshots))
	for i := range snapshots {
		byDay[model.Day(snapshots[i].SnapshotDate).Format(model.DateLayout)] = snapshots[i].Remaining()
	}

	b := Burndown{
		Dates:           make([]string, n),
		IdealRemaining:  make([]float64, n),
		ActualRemaining: make([]*int, n),
	}
	for i := 0; i < n; i++ {
		key := start.AddDate(0, 0, i).Format(model.DateLayout)
		b.Dates[i] = key

		ideal := float64(totalTasks)
		if n > 1 {
			ideal = float64(totalTasks) * (1 - float64(i)/float64(n-1))
		}
		b.IdealRemaining[i] = round2(ideal)

		if remaining, ok := byDay[key]; ok {
			v := remaining
			b.ActualRemaining[i] = &v
		}
	}
	return b
}
