package analytics

import (
	"testing"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResourceUtilization(t *testing.T) {
	r := &model.Resource{ID: uuid.New(), WorkingHoursPerDay: 8, AvailabilityPercentage: 50}

	tests := []struct {
		name        string
		assignments []model.ResourceAssignment
		start, end  string
		available   float64
		assigned    float64
		percentage  float64
		capacity    Capacity
	}{
		{
			name:       "no assignments",
			start:      "2025-01-01",
			end:        "2025-01-10",
			available:  40,
			percentage: 0,
			capacity:   CapacityAvailable,
		},
		{
			name: "fully inside range",
			assignments: []model.ResourceAssignment{
				{StartDate: day("2025-01-02"), EndDate: day("2025-01-05"), Hours: 32},
			},
			start:      "2025-01-01",
			end:        "2025-01-10",
			available:  40,
			assigned:   32,
			percentage: 80,
			capacity:   CapacityBusy,
		},
		{
			name: "partial overlap is prorated",
			assignments: []model.ResourceAssignment{
				// 10 hours a day, 4 of its days fall in range
				{StartDate: day("2024-12-29"), EndDate: day("2025-01-07"), Hours: 100},
			},
			start:      "2025-01-04",
			end:        "2025-01-13",
			available:  40,
			assigned:   40,
			percentage: 100,
			capacity:   CapacityBusy,
		},
		{
			name: "overallocated",
			assignments: []model.ResourceAssignment{
				{StartDate: day("2025-01-01"), EndDate: day("2025-01-10"), Hours: 30},
				{StartDate: day("2025-01-01"), EndDate: day("2025-01-10"), Hours: 20},
			},
			start:      "2025-01-01",
			end:        "2025-01-10",
			available:  40,
			assigned:   50,
			percentage: 125,
			capacity:   CapacityOverallocated,
		},
		{
			name: "outside range and inverted assignments ignored",
			assignments: []model.ResourceAssignment{
				{StartDate: day("2025-02-01"), EndDate: day("2025-02-05"), Hours: 30},
				{StartDate: day("2025-01-05"), EndDate: day("2025-01-01"), Hours: 30},
			},
			start:     "2025-01-01",
			end:       "2025-01-10",
			available: 40,
			capacity:  CapacityAvailable,
		},
		{
			name: "inverted range has no availability",
			assignments: []model.ResourceAssignment{
				{StartDate: day("2025-01-01"), EndDate: day("2025-01-10"), Hours: 30},
			},
			start:    "2025-01-10",
			end:      "2025-01-01",
			capacity: CapacityAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResourceUtilization(r, tt.assignments, day(tt.start), day(tt.end))
			assert.Equal(t, tt.available, got.AvailableHours)
			assert.Equal(t, tt.assigned, got.AssignedHours)
			assert.Equal(t, tt.percentage, got.Percentage)
			assert.Equal(t, tt.capacity, got.Capacity)
		})
	}
}

func TestClassifyCapacity(t *testing.T) {
	assert.Equal(t, CapacityAvailable, ClassifyCapacity(69.99))
	assert.Equal(t, CapacityBusy, ClassifyCapacity(70))
	assert.Equal(t, CapacityBusy, ClassifyCapacity(100))
	assert.Equal(t, CapacityOverallocated, ClassifyCapacity(100.01))
}
