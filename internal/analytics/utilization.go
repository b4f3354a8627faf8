package analytics

import (
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
)

type Capacity string

const (
	CapacityAvailable     Capacity = "available"
	CapacityBusy          Capacity = "busy"
	CapacityOverallocated Capacity = "overallocated"
)

// ClassifyCapacity buckets a utilization percentage.
func ClassifyCapacity(pct float64) Capacity {
	switch {
	case pct < 70:
		return CapacityAvailable
	case pct <= 100:
		return CapacityBusy
	default:
		return CapacityOverallocated
	}
}

type Utilization struct {
	ResourceID     string   `json:"resource_id"`
	Name           string   `json:"name"`
	Start          string   `json:"start"`
	End            string   `json:"end"`
	AvailableHours float64  `json:"available_hours"`
	AssignedHours  float64  `json:"assigned_hours"`
	Percentage     float64  `json:"percentage"`
	Capacity       Capacity `json:"capacity"`
}

// ResourceUtilization spreads each assignment evenly over its days and counts
// the share overlapping [start, end], both inclusive.
func ResourceUtilization(r *model.Resource, assignments []model.ResourceAssignment, start, end time.Time) Utilization {
	start, end = model.Day(start), model.Day(end)
	u := Utilization{
		ResourceID: r.ID.String(),
		Name:       r.Name,
		Start:      start.Format(model.DateLayout),
		End:        end.Format(model.DateLayout),
	}

	days := model.DaysBetween(start, end) + 1
	if days < 0 {
		days = 0
	}
	available := r.WorkingHoursPerDay * r.AvailabilityPercentage / 100 * float64(days)

	assigned := 0.0
	for i := range assignments {
		a := &assignments[i]
		total := a.TotalDays()
		if total <= 0 {
			continue
		}
		from := maxTime(start, model.Day(a.StartDate))
		to := minTime(end, model.Day(a.EndDate))
		overlap := model.DaysBetween(from, to) + 1
		if overlap <= 0 {
			continue
		}
		assigned += a.Hours / float64(total) * float64(overlap)
	}

	u.AvailableHours = round2(available)
	u.AssignedHours = round2(assigned)
	if available > 0 {
		u.Percentage = round2(assigned / available * 100)
	}
	u.Capacity = ClassifyCapacity(u.Percentage)
	return u
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
