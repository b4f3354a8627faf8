package repo

import (
	"context"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CostRepo interface {
	Create(ctx context.Context, c *model.ProjectCost) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectCost, error)
}

type costRepo struct{ db *gorm.DB }

func NewCostRepo(db *gorm.DB) CostRepo {
	return &costRepo{db: db}
}

func (r *costRepo) Create(ctx context.Context, c *model.ProjectCost) error {
	return r.db.WithContext(ctx).Omit("Project").Create(c).Error
}

func (r *costRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectCost, error) {
	costs := []model.ProjectCost{}
	return costs, r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("date ASC, id ASC").Find(&costs).Error
}
