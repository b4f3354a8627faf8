package handler

import (
	"context"
	"time"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) ListForUser(ctx context.Context, user *model.User) ([]*model.Project, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectService) AddCost(ctx context.Context, projectID uuid.UUID, in service.CreateCostInput) (*model.ProjectCost, error) {
	args := m.Called(ctx, projectID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectCost), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) ComputeAll(ctx context.Context, projectID uuid.UUID, locale string) (*analytics.Metrics, error) {
	args := m.Called(ctx, projectID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Metrics), args.Error(1)
}

func (m *MockAnalyticsService) ComputeAsOf(ctx context.Context, projectID uuid.UUID, asOf time.Time, locale string) (*analytics.Metrics, error) {
	args := m.Called(ctx, projectID, asOf, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Metrics), args.Error(1)
}

func (m *MockAnalyticsService) Burndown(ctx context.Context, projectID uuid.UUID) (*analytics.Burndown, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Burndown), args.Error(1)
}

func (m *MockAnalyticsService) Portfolio(ctx context.Context, user *model.User) (*analytics.Portfolio, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Portfolio), args.Error(1)
}

type MockSnapshotService struct {
	mock.Mock
}

func (m *MockSnapshotService) Create(ctx context.Context, projectID uuid.UUID, date *time.Time, trigger string) (*model.ProjectMetricsSnapshot, error) {
	args := m.Called(ctx, projectID, date, trigger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectMetricsSnapshot), args.Error(1)
}

func (m *MockSnapshotService) Trend(ctx context.Context, projectID uuid.UUID, days int) ([]model.ProjectMetricsSnapshot, error) {
	args := m.Called(ctx, projectID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectMetricsSnapshot), args.Error(1)
}

func (m *MockSnapshotService) SnapshotActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) Evaluate(ctx context.Context, projectID uuid.UUID) ([]service.Alert, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Alert), args.Error(1)
}

func (m *MockAlertService) EvaluateActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) Create(ctx context.Context, in service.CreateTemplateInput) (*model.ProjectTemplate, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectTemplate), args.Error(1)
}

func (m *MockTemplateService) Get(ctx context.Context, id uuid.UUID) (*model.ProjectTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectTemplate), args.Error(1)
}

func (m *MockTemplateService) Instantiate(ctx context.Context, templateID uuid.UUID, in service.InstantiateInput) (*model.Project, error) {
	args := m.Called(ctx, templateID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Workbook(ctx context.Context, projectID uuid.UUID, locale string) (*service.Export, error) {
	args := m.Called(ctx, projectID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

func (m *MockExportService) Upload(ctx context.Context, projectID uuid.UUID, locale string) (*service.UploadedExport, error) {
	args := m.Called(ctx, projectID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadedExport), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withContext attaches the user and project the auth middleware would set.
func withContext(user *model.User, project *model.Project, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set("user", user)
		}
		if project != nil {
			c.Set("project", project)
		}
		h(c)
	}
}

func day(s string) time.Time {
	t, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, projectID uuid.UUID, in service.CreateTaskInput) (*model.Task, error) {
	args := m.Called(ctx, projectID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) UpdateStatus(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID, in service.UpdateTaskStatusInput) (*model.Task, error) {
	args := m.Called(ctx, projectID, taskID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskService) AddDependency(ctx context.Context, projectID uuid.UUID, in service.CreateDependencyInput) (*model.TaskDependency, error) {
	args := m.Called(ctx, projectID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskDependency), args.Error(1)
}

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) Create(ctx context.Context, in service.CreateResourceInput) (*model.Resource, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceService) Assign(ctx context.Context, resourceID uuid.UUID, in service.CreateAssignmentInput) (*model.ResourceAssignment, error) {
	args := m.Called(ctx, resourceID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResourceAssignment), args.Error(1)
}

func (m *MockResourceService) Utilization(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*analytics.Utilization, error) {
	args := m.Called(ctx, resourceID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Utilization), args.Error(1)
}

func (m *MockResourceService) Capacity(ctx context.Context, start, end time.Time) ([]analytics.Utilization, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analytics.Utilization), args.Error(1)
}
