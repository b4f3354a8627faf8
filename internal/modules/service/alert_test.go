package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/infra/queue"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func TestDetect(t *testing.T) {
	projectID := uuid.New()

	tests := []struct {
		name      string
		mutate    func(*analytics.Metrics)
		wantKinds []string
	}{
		{
			name:      "healthy project raises nothing",
			mutate:    func(m *analytics.Metrics) {},
			wantKinds: []string{},
		},
		{
			name: "each crossed budget threshold is its own alert",
			mutate: func(m *analytics.Metrics) {
				m.BudgetConsumedPercent = 92
				m.BudgetThresholdsCrossed = []int{75, 90}
			},
			wantKinds: []string{AlertBudgetThreshold, AlertBudgetThreshold},
		},
		{
			name:      "low health",
			mutate:    func(m *analytics.Metrics) { m.HealthScore = 59 },
			wantKinds: []string{AlertLowHealth},
		},
		{
			name:      "health at threshold is fine",
			mutate:    func(m *analytics.Metrics) { m.HealthScore = 60 },
			wantKinds: []string{},
		},
		{
			name:      "forecast after end date",
			mutate:    func(m *analytics.Metrics) { m.PredictedCompletionDate = strPtr("2025-05-02") },
			wantKinds: []string{AlertLateForecast},
		},
		{
			name:      "forecast on end date is fine",
			mutate:    func(m *analytics.Metrics) { m.PredictedCompletionDate = strPtr("2025-04-30") },
			wantKinds: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleMetrics(projectID, "2025-03-20")
			tt.mutate(m)

			alerts := Detect(m, 60)
			kinds := make([]string, 0, len(alerts))
			for _, a := range alerts {
				kinds = append(kinds, a.Kind)
				assert.Equal(t, "2025-03-20", a.Date)
				assert.NotEmpty(t, a.Message)
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestAlertService_Evaluate_Dedupes(t *testing.T) {
	projectID := uuid.New()
	m := sampleMetrics(projectID, "2025-03-20")
	m.BudgetConsumedPercent = 92
	m.BudgetThresholdsCrossed = []int{75, 90}

	a := &MockAnalyticsService{}
	a.On("ComputeAll", mock.Anything, projectID, "").Return(m, nil)

	dedup := &MockDeduper{}
	dedup.On("AcquireOnce", mock.Anything, projectID.String()+":budget_threshold:75:2025-03-20").Return(false)
	dedup.On("AcquireOnce", mock.Anything, projectID.String()+":budget_threshold:90:2025-03-20").Return(true)

	pub := &MockPublisher{}
	pub.On("Publish", mock.Anything, queue.RoutingProjectAlert, mock.MatchedBy(func(al Alert) bool {
		return al.Threshold == 90
	})).Return(nil).Once()

	svc := NewAlertService(a, &MockProjectRepo{}, dedup, pub, 60, zap.NewNop())
	got, err := svc.Evaluate(context.Background(), projectID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 90, got[0].Threshold)

	dedup.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestAlertService_Evaluate_PublishError(t *testing.T) {
	projectID := uuid.New()
	m := sampleMetrics(projectID, "2025-03-20")
	m.HealthScore = 40

	a := &MockAnalyticsService{}
	a.On("ComputeAll", mock.Anything, projectID, "").Return(m, nil)
	pub := &MockPublisher{}
	pub.On("Publish", mock.Anything, queue.RoutingProjectAlert, mock.Anything).Return(errors.New("channel closed"))

	key := projectID.String() + ":low_health:60:2025-03-20"
	dedup := &MockDeduper{}
	dedup.On("AcquireOnce", mock.Anything, key).Return(true)
	dedup.On("Release", mock.Anything, key).Return()

	svc := NewAlertService(a, &MockProjectRepo{}, dedup, pub, 60, zap.NewNop())
	got, err := svc.Evaluate(context.Background(), projectID)
	assert.ErrorContains(t, err, "channel closed")
	assert.Empty(t, got)
	dedup.AssertExpectations(t)
}

// memDeduper keeps claimed keys in memory.
type memDeduper struct{ claimed map[string]bool }

func (d *memDeduper) AcquireOnce(_ context.Context, key string) bool {
	if d.claimed[key] {
		return false
	}
	d.claimed[key] = true
	return true
}

func (d *memDeduper) Release(_ context.Context, key string) { delete(d.claimed, key) }

func TestAlertService_Evaluate_RetriesAfterPublishFailure(t *testing.T) {
	projectID := uuid.New()
	m := sampleMetrics(projectID, "2025-03-20")
	m.HealthScore = 40

	a := &MockAnalyticsService{}
	a.On("ComputeAll", mock.Anything, projectID, "").Return(m, nil)
	pub := &MockPublisher{}
	pub.On("Publish", mock.Anything, queue.RoutingProjectAlert, mock.Anything).Return(errors.New("channel closed")).Once()
	pub.On("Publish", mock.Anything, queue.RoutingProjectAlert, mock.Anything).Return(nil).Once()

	dedup := &memDeduper{claimed: map[string]bool{}}
	svc := NewAlertService(a, &MockProjectRepo{}, dedup, pub, 60, zap.NewNop())

	_, err := svc.Evaluate(context.Background(), projectID)
	require.Error(t, err)

	got, err := svc.Evaluate(context.Background(), projectID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, AlertLowHealth, got[0].Kind)

	got, err = svc.Evaluate(context.Background(), projectID)
	require.NoError(t, err)
	assert.Empty(t, got)
	pub.AssertExpectations(t)
}

func TestAlertService_EvaluateActive(t *testing.T) {
	healthy, sick := uuid.New(), uuid.New()
	projects := &MockProjectRepo{}
	projects.On("ListActive", mock.Anything).Return([]*model.Project{{ID: healthy}, {ID: sick}}, nil)

	sickMetrics := sampleMetrics(sick, "2025-03-20")
	sickMetrics.HealthScore = 30
	a := &MockAnalyticsService{}
	a.On("ComputeAll", mock.Anything, healthy, "").Return(sampleMetrics(healthy, "2025-03-20"), nil)
	a.On("ComputeAll", mock.Anything, sick, "").Return(sickMetrics, nil)

	pub := &MockPublisher{}
	pub.On("Publish", mock.Anything, queue.RoutingProjectAlert, mock.Anything).Return(nil)

	svc := NewAlertService(a, projects, nil, pub, 0, zap.NewNop())
	n, err := svc.EvaluateActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
