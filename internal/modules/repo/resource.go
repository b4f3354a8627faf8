package repo

import (
	"context"
	"errors"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceRepo interface {
	Create(ctx context.Context, r *model.Resource) error
	Get(ctx context.Context, id uuid.UUID) (*model.Resource, error)
	List(ctx context.Context) ([]model.Resource, error)
	CreateAssignment(ctx context.Context, a *model.ResourceAssignment) error
	// ListAssignments returns assignments of resourceID overlapping [start, end].
	ListAssignments(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]model.ResourceAssignment, error)
}

type resourceRepo struct{ db *gorm.DB }

func NewResourceRepo(db *gorm.DB) ResourceRepo {
	return &resourceRepo{db: db}
}

func (r *resourceRepo) Create(ctx context.Context, res *model.Resource) error {
	return r.db.WithContext(ctx).Omit("Assignments").Create(res).Error
}

func (r *resourceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Resource, error) {
	var res model.Resource
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepo) List(ctx context.Context) ([]model.Resource, error) {
	resources := []model.Resource{}
	return resources, r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&resources).Error
}

func (r *resourceRepo) CreateAssignment(ctx context.Context, a *model.ResourceAssignment) error {
	return r.db.WithContext(ctx).Omit("Resource").Create(a).Error
}

func (r *resourceRepo) ListAssignments(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]model.ResourceAssignment, error) {
	assignments := []model.ResourceAssignment{}
	return assignments, r.db.WithContext(ctx).
		Where("resource_id = ? AND start_date <= ? AND end_date >= ?", resourceID, model.Day(end), model.Day(start)).
		Order("start_date ASC, id ASC").
		Find(&assignments).Error
}
