package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/pkg/graph"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TaskRepo interface {
	// Create inserts t and refreshes the project's cached progress.
	Create(ctx context.Context, t *model.Task) (decimal.Decimal, error)
	Get(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID) (*model.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error)
	// Save persists t and refreshes the project's cached progress.
	Save(ctx context.Context, t *model.Task) (decimal.Decimal, error)
	// CreateDependency adds d unless it would close a cycle in the project graph.
	CreateDependency(ctx context.Context, projectID uuid.UUID, d *model.TaskDependency) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) (decimal.Decimal, error) {
	var pct decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Dependencies", "Project", "Assignee").Create(t).Error; err != nil {
			return err
		}
		var err error
		pct, err = refreshProgress(tx, t.ProjectID)
		return err
	})
	return pct, err
}

func (r *taskRepo) Get(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID) (*model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).Preload("Dependencies").Where("id = ? AND project_id = ?", taskID, projectID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	tasks := []model.Task{}
	return tasks, r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at ASC, id ASC").Find(&tasks).Error
}

func (r *taskRepo) Save(ctx context.Context, t *model.Task) (decimal.Decimal, error) {
	var pct decimal.Decimal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).Where("id = ? AND project_id = ?", t.ID, t.ProjectID).
			Select("Status", "Priority", "ActualHours", "CompletedAt", "AssigneeID").
			Updates(t)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		var err error
		pct, err = refreshProgress(tx, t.ProjectID)
		return err
	})
	return pct, err
}

func (r *taskRepo) CreateDependency(ctx context.Context, projectID uuid.UUID, d *model.TaskDependency) error {
	if d.TaskID == d.DependsOnID {
		return &graph.CycleError{Node: d.TaskID}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Task{}).Where("project_id = ? AND id IN ?", projectID, []uuid.UUID{d.TaskID, d.DependsOnID}).Count(&count).Error; err != nil {
			return err
		}
		if count != 2 {
			return fmt.Errorf("dependency endpoints: %w", ErrNotFound)
		}

		var existing []model.TaskDependency
		if err := tx.Joins("JOIN tasks ON tasks.id = task_dependencies.task_id").
			Where("tasks.project_id = ?", projectID).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("load dependencies: %w", err)
		}

		edges := make([]graph.Edge, 0, len(existing)+1)
		for _, e := range existing {
			if e.TaskID == d.TaskID && e.DependsOnID == d.DependsOnID {
				return ErrDuplicate
			}
			edges = append(edges, graph.Edge{From: e.TaskID, To: e.DependsOnID})
		}
		edges = append(edges, graph.Edge{From: d.TaskID, To: d.DependsOnID})
		if err := graph.DetectCycle(edges); err != nil {
			return err
		}

		return tx.Omit("DependsOn").Create(d).Error
	})
}
