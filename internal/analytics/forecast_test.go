package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictCompletionDate(t *testing.T) {
	asOf := day("2025-01-01")

	tests := []struct {
		name     string
		open     int
		velocity float64
		expected string
	}{
		{name: "zero velocity is unknown", open: 5, velocity: 0},
		{name: "zero velocity with nothing open is still unknown", open: 0, velocity: 0},
		{name: "negative velocity is unknown", open: 5, velocity: -1},
		{name: "nothing open finishes today", open: 0, velocity: 2, expected: "2025-01-01"},
		{name: "two weeks of work", open: 4, velocity: 2, expected: "2025-01-15"},
		{name: "partial week rounds up a day", open: 1, velocity: 3, expected: "2025-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictCompletionDate(tt.open, tt.velocity, asOf)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.Format("2006-01-02"))
		})
	}
}

func TestAtRisk(t *testing.T) {
	end := day("2025-03-01")

	assert.True(t, AtRisk(59, nil, end, 60))
	assert.False(t, AtRisk(60, nil, end, 60))
	assert.True(t, AtRisk(90, dayPtr("2025-03-02"), end, 60))
	assert.False(t, AtRisk(90, dayPtr("2025-03-01"), end, 60))
	assert.False(t, AtRisk(90, nil, end, 60))
}
