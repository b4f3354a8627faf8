package analytics

import (
	"testing"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/stretchr/testify/assert"
)

func TestVelocity(t *testing.T) {
	tasks := []model.Task{
		doneTask("2025-03-28"), // inside 4 weeks
		doneTask("2025-03-10"),
		doneTask("2025-03-04"), // exactly the window start, excluded
		doneTask("2025-02-01"),
		openTask(""),
		{Status: model.TaskDone}, // never stamped
	}
	asOf := day("2025-04-01")

	tests := []struct {
		name     string
		window   int
		expected float64
	}{
		{name: "default window", window: 4, expected: 0.5},
		{name: "one week", window: 1, expected: 1},
		{name: "eight weeks", window: 8, expected: 0.38},
		{name: "zero window", window: 0, expected: 0},
		{name: "negative window", window: -2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Velocity(tasks, asOf, tt.window))
		})
	}
}

func TestVelocity_IgnoresFutureCompletion(t *testing.T) {
	tasks := []model.Task{doneTask("2025-04-05")}
	assert.Equal(t, 0.0, Velocity(tasks, day("2025-04-01"), 4))
}
