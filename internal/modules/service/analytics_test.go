package service

import (
	"context"
	"testing"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

func testGraph(name string, status model.ProjectStatus) *repo.ProjectGraph {
	p := &model.Project{
		ID:        uuid.New(),
		Code:      "PRJ-" + name,
		Name:      name,
		NameI18n:  datatypes.JSONMap{"de": name + " (de)"},
		StartDate: day("2025-01-01"),
		EndDate:   day("2025-01-31"),
		Budget:    decimal.NewFromInt(1000),
		Status:    status,
	}
	done := day("2025-01-10")
	return &repo.ProjectGraph{
		Project: p,
		Tasks: []model.Task{
			{ID: uuid.New(), ProjectID: p.ID, Status: model.TaskDone, CompletedAt: &done},
			{ID: uuid.New(), ProjectID: p.ID, Status: model.TaskInProgress},
		},
		Costs: []model.ProjectCost{
			{ProjectID: p.ID, Amount: decimal.NewFromInt(200), Date: day("2025-01-05")},
		},
	}
}

func TestAnalyticsService_ComputeAsOf(t *testing.T) {
	g := testGraph("Apollo", model.ProjectActive)
	projects := &MockProjectRepo{}
	projects.On("LoadGraph", mock.Anything, g.Project.ID).Return(g, nil)

	svc := NewAnalyticsService(projects, &MockSnapshotRepo{}, analytics.DefaultOptions(), "en", FixedClock(day("2025-01-16")), zap.NewNop())

	tests := []struct {
		locale   string
		wantName string
	}{
		{locale: "de-AT", wantName: "Apollo (de)"},
		{locale: "fr", wantName: "Apollo"},
		{locale: "", wantName: "Apollo"},
	}
	for _, tt := range tests {
		t.Run("locale "+tt.locale, func(t *testing.T) {
			m, err := svc.ComputeAsOf(context.Background(), g.Project.ID, day("2025-01-16"), tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.ProjectName)
			assert.Equal(t, "2025-01-16", m.AsOf)
			assert.Equal(t, 2, m.Tasks.Total)
			assert.Equal(t, 1, m.Tasks.Completed)
			assert.Equal(t, "50", m.ProgressPercentage.String())
			assert.True(t, m.EVM.ActualCost.Equal(decimal.NewFromInt(200)))
		})
	}
}

func TestAnalyticsService_ComputeAll_NotFound(t *testing.T) {
	projects := &MockProjectRepo{}
	projects.On("LoadGraph", mock.Anything, mock.Anything).Return(nil, repo.ErrNotFound)

	svc := NewAnalyticsService(projects, &MockSnapshotRepo{}, analytics.DefaultOptions(), "", SystemClock, zap.NewNop())
	_, err := svc.ComputeAll(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyticsService_Burndown(t *testing.T) {
	g := testGraph("Apollo", model.ProjectActive)
	projects := &MockProjectRepo{}
	projects.On("LoadGraph", mock.Anything, g.Project.ID).Return(g, nil)
	snaps := &MockSnapshotRepo{}
	snaps.On("ListRange", mock.Anything, g.Project.ID, g.Project.StartDate, g.Project.EndDate).Return([]model.ProjectMetricsSnapshot{
		{SnapshotDate: day("2025-01-02"), TasksTotal: 2, TasksCompleted: 0},
	}, nil)

	svc := NewAnalyticsService(projects, snaps, analytics.DefaultOptions(), "en", SystemClock, zap.NewNop())
	b, err := svc.Burndown(context.Background(), g.Project.ID)
	require.NoError(t, err)
	require.Len(t, b.Dates, 31)
	assert.Nil(t, b.ActualRemaining[0])
	require.NotNil(t, b.ActualRemaining[1])
	assert.Equal(t, 2, *b.ActualRemaining[1])
	assert.Equal(t, 2.0, b.IdealRemaining[0])
	assert.Equal(t, 0.0, b.IdealRemaining[30])
}

func TestAnalyticsService_Portfolio(t *testing.T) {
	a := testGraph("Apollo", model.ProjectActive)
	b := testGraph("Gemini", model.ProjectCompleted)

	tests := []struct {
		name    string
		role    string
		wantAll bool
	}{
		{name: "member sees own projects", role: model.RoleMember, wantAll: false},
		{name: "admin sees every project", role: model.RoleAdmin, wantAll: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &model.User{ID: uuid.New(), Role: tt.role, Locale: "de"}
			projects := &MockProjectRepo{}
			projects.On("ListForUser", mock.Anything, user.ID, tt.wantAll).Return([]*model.Project{a.Project, b.Project}, nil)
			projects.On("LoadGraph", mock.Anything, a.Project.ID).Return(a, nil)
			projects.On("LoadGraph", mock.Anything, b.Project.ID).Return(b, nil)

			svc := NewAnalyticsService(projects, &MockSnapshotRepo{}, analytics.DefaultOptions(), "en", FixedClock(day("2025-01-16")), zap.NewNop())
			got, err := svc.Portfolio(context.Background(), user)
			require.NoError(t, err)

			assert.Equal(t, 2, got.ProjectCount)
			assert.Equal(t, 1, got.CompletedProjects)
			assert.True(t, got.TotalBudget.Equal(decimal.NewFromInt(2000)))
			assert.True(t, got.TotalActualCost.Equal(decimal.NewFromInt(400)))
			assert.Equal(t, "Apollo (de)", got.Projects[0].Name)
			projects.AssertExpectations(t)
		})
	}
}

func TestAnalyticsService_OnlyLiveComputationsObserveHealth(t *testing.T) {
	g := testGraph("Gemini", model.ProjectActive)
	projects := &MockProjectRepo{}
	projects.On("LoadGraph", mock.Anything, g.Project.ID).Return(g, nil)
	svc := NewAnalyticsService(projects, &MockSnapshotRepo{}, analytics.DefaultOptions(), "", FixedClock(day("2025-01-16")), zap.NewNop())

	before := metrics.HealthSampleCount()
	_, err := svc.ComputeAsOf(context.Background(), g.Project.ID, day("2025-01-05"), "")
	require.NoError(t, err)
	assert.Equal(t, before, metrics.HealthSampleCount())

	_, err = svc.ComputeAll(context.Background(), g.Project.ID, "")
	require.NoError(t, err)
	assert.Equal(t, before+1, metrics.HealthSampleCount())
}
