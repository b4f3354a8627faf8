package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectGraph is a project with everything the calculators read.
type ProjectGraph struct {
	Project *model.Project
	Tasks   []model.Task
	Costs   []model.ProjectCost
}

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project, memberIDs []uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListForUser(ctx context.Context, userID uuid.UUID, all bool) ([]*model.Project, error)
	ListActive(ctx context.Context) ([]*model.Project, error)
	LoadGraph(ctx context.Context, id uuid.UUID) (*ProjectGraph, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createProject(tx, p, memberIDs)
	})
}

// createProject inserts p and links its team inside an open transaction.
func createProject(tx *gorm.DB, p *model.Project, memberIDs []uuid.UUID) error {
	if err := tx.Omit("TeamMembers", "Tasks", "Costs", "Snapshots", "Owner").Create(p).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	if len(memberIDs) == 0 {
		return nil
	}

	var members []model.User
	if err := tx.Where("id IN ?", memberIDs).Find(&members).Error; err != nil {
		return fmt.Errorf("load team members: %w", err)
	}
	if len(members) != len(uniqueIDs(memberIDs)) {
		return fmt.Errorf("team members: %w", ErrNotFound)
	}
	if err := tx.Model(p).Association("TeamMembers").Append(&members); err != nil {
		return fmt.Errorf("link team members: %w", err)
	}
	p.TeamMembers = members
	return nil
}

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).Preload("TeamMembers").Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListForUser returns the projects userID owns or is a team member of, or
// every project when all is set.
func (r *projectRepo) ListForUser(ctx context.Context, userID uuid.UUID, all bool) ([]*model.Project, error) {
	q := r.db.WithContext(ctx).Preload("TeamMembers")
	if !all {
		members := r.db.Table("project_members").Select("project_id").Where("user_id = ?", userID)
		q = q.Where("owner_id = ? OR id IN (?)", userID, members)
	}

	var projects []*model.Project
	return projects, q.Order("start_date ASC, code ASC").Find(&projects).Error
}

func (r *projectRepo) ListActive(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	return projects, r.db.WithContext(ctx).
		Where("status NOT IN ?", []model.ProjectStatus{model.ProjectCompleted, model.ProjectCancelled}).
		Order("code ASC").
		Find(&projects).Error
}

func (r *projectRepo) LoadGraph(ctx context.Context, id uuid.UUID) (*ProjectGraph, error) {
	g := &ProjectGraph{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Project
		if err := tx.Preload("TeamMembers").Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		g.Project = &p
		if err := tx.Preload("Dependencies").Where("project_id = ?", id).Order("created_at ASC, id ASC").Find(&g.Tasks).Error; err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}
		if err := tx.Where("project_id = ?", id).Order("date ASC, id ASC").Find(&g.Costs).Error; err != nil {
			return fmt.Errorf("load costs: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *projectRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ProjectStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the project and everything it owns in one transaction.
func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Project
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		taskIDs := tx.Model(&model.Task{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("task_id IN (?) OR depends_on_id IN (?)", taskIDs, taskIDs).Delete(&model.TaskDependency{}).Error; err != nil {
			return fmt.Errorf("delete dependencies: %w", err)
		}
		for _, owned := range []any{&model.ResourceAssignment{}, &model.Task{}, &model.ProjectCost{}, &model.ProjectMetricsSnapshot{}} {
			if err := tx.Where("project_id = ?", id).Delete(owned).Error; err != nil {
				return fmt.Errorf("delete %T: %w", owned, err)
			}
		}
		if err := tx.Model(&p).Association("TeamMembers").Clear(); err != nil {
			return fmt.Errorf("unlink team: %w", err)
		}
		return tx.Delete(&p).Error
	})
}

// refreshProgress recomputes the cached progress of projectID from its tasks.
func refreshProgress(tx *gorm.DB, projectID uuid.UUID) (decimal.Decimal, error) {
	var total, done int64
	if err := tx.Model(&model.Task{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if err := tx.Model(&model.Task{}).Where("project_id = ? AND status = ?", projectID, model.TaskDone).Count(&done).Error; err != nil {
		return decimal.Zero, err
	}

	pct := decimal.Zero
	if total > 0 {
		pct = decimal.NewFromInt(done).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(total)).Round(2)
	}
	return pct, tx.Model(&model.Project{}).Where("id = ?", projectID).Update("progress_percentage", pct).Error
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
