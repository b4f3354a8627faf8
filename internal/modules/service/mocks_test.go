package service

import (
	"context"
	"time"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/infra/blob"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/templating"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project, memberIDs []uuid.UUID) error {
	args := m.Called(ctx, p, memberIDs)
	return args.Error(0)
}

func (m *MockProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListForUser(ctx context.Context, userID uuid.UUID, all bool) ([]*model.Project, error) {
	args := m.Called(ctx, userID, all)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListActive(ctx context.Context) ([]*model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockProjectRepo) LoadGraph(ctx context.Context, id uuid.UUID) (*repo.ProjectGraph, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.ProjectGraph), args.Error(1)
}

func (m *MockProjectRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepo is a mock implementation of repo.TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) (decimal.Decimal, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTaskRepo) Get(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, projectID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) Save(ctx context.Context, t *model.Task) (decimal.Decimal, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTaskRepo) CreateDependency(ctx context.Context, projectID uuid.UUID, d *model.TaskDependency) error {
	args := m.Called(ctx, projectID, d)
	return args.Error(0)
}

// MockSnapshotRepo is a mock implementation of repo.SnapshotRepo
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Upsert(ctx context.Context, s *model.ProjectMetricsSnapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSnapshotRepo) ListRange(ctx context.Context, projectID uuid.UUID, from, to time.Time) ([]model.ProjectMetricsSnapshot, error) {
	args := m.Called(ctx, projectID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectMetricsSnapshot), args.Error(1)
}

// MockTemplateRepo is a mock implementation of repo.TemplateRepo
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Create(ctx context.Context, t *model.ProjectTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTemplateRepo) Get(ctx context.Context, id uuid.UUID) (*model.ProjectTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectTemplate), args.Error(1)
}

func (m *MockTemplateRepo) Instantiate(ctx context.Context, plan *templating.Plan, deps []model.TemplateDependency, memberIDs []uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, plan, deps, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

// MockUserRepo is a mock implementation of repo.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockResourceRepo is a mock implementation of repo.ResourceRepo
type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) Create(ctx context.Context, r *model.Resource) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResourceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceRepo) List(ctx context.Context) ([]model.Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

func (m *MockResourceRepo) CreateAssignment(ctx context.Context, a *model.ResourceAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockResourceRepo) ListAssignments(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]model.ResourceAssignment, error) {
	args := m.Called(ctx, resourceID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResourceAssignment), args.Error(1)
}

// MockPublisher is a mock implementation of queue.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

// MockDeduper is a mock implementation of Deduper
type MockDeduper struct {
	mock.Mock
}

func (m *MockDeduper) AcquireOnce(ctx context.Context, key string) bool {
	args := m.Called(ctx, key)
	return args.Bool(0)
}

func (m *MockDeduper) Release(ctx context.Context, key string) {
	m.Called(ctx, key)
}

// MockObjectStore is a mock implementation of blob.ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) UploadBytes(ctx context.Context, key, contentType string, data []byte) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, key, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

func (m *MockObjectStore) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

// MockAnalyticsService is a mock implementation of AnalyticsService
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

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// MockCostRepo is a mock implementation of repo.CostRepo
type MockCostRepo struct {
	mock.Mock
}

func (m *MockCostRepo) Create(ctx context.Context, c *model.ProjectCost) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCostRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectCost, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectCost), args.Error(1)
}
