package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/pkg/graph"
	"github.com/bizplatform/pmcore/internal/templating"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateRepo interface {
	Create(ctx context.Context, t *model.ProjectTemplate) error
	Get(ctx context.Context, id uuid.UUID) (*model.ProjectTemplate, error)
	// Instantiate stores plan as a new project with remapped dependencies.
	// Any failure rolls back every row written.
	Instantiate(ctx context.Context, plan *templating.Plan, deps []model.TemplateDependency, memberIDs []uuid.UUID) (*model.Project, error)
}

type templateRepo struct{ db *gorm.DB }

func NewTemplateRepo(db *gorm.DB) TemplateRepo {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, t *model.ProjectTemplate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks, deps := t.Tasks, t.Dependencies
		if err := tx.Omit("Tasks", "Dependencies").Create(t).Error; err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		for i := range tasks {
			tasks[i].TemplateID = t.ID
			if err := tx.Create(&tasks[i]).Error; err != nil {
				return fmt.Errorf("create template task %d: %w", tasks[i].SequenceNumber, err)
			}
		}
		for i := range deps {
			deps[i].TemplateID = t.ID
			if err := tx.Create(&deps[i]).Error; err != nil {
				return fmt.Errorf("create template dependency: %w", err)
			}
		}
		return nil
	})
}

func (r *templateRepo) Get(ctx context.Context, id uuid.UUID) (*model.ProjectTemplate, error) {
	var t model.ProjectTemplate
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sequence_number ASC") }).
		Preload("Dependencies").
		Where("id = ?", id).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) Instantiate(ctx context.Context, plan *templating.Plan, deps []model.TemplateDependency, memberIDs []uuid.UUID) (*model.Project, error) {
	p := plan.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createProject(tx, &p, memberIDs); err != nil {
			return err
		}

		mapping := make(map[uuid.UUID]uuid.UUID, len(plan.Tasks))
		created := make([]model.Task, 0, len(plan.Tasks))
		for i := range plan.Tasks {
			task := plan.Tasks[i]
			task.ProjectID = p.ID
			if err := tx.Omit("Dependencies", "Project", "Assignee").Create(&task).Error; err != nil {
				return fmt.Errorf("create task %q: %w", task.Title, err)
			}
			mapping[plan.Sources[i]] = task.ID
			created = append(created, task)
		}

		edges, err := templating.RemapDependencies(deps, mapping)
		if err != nil {
			return err
		}
		check := make([]graph.Edge, 0, len(edges))
		for _, e := range edges {
			check = append(check, graph.Edge{From: e.TaskID, To: e.DependsOnID})
		}
		if err := graph.DetectCycle(check); err != nil {
			return err
		}
		for i := range edges {
			if err := tx.Omit("DependsOn").Create(&edges[i]).Error; err != nil {
				return fmt.Errorf("create dependency: %w", err)
			}
		}

		byTask := make(map[uuid.UUID][]model.TaskDependency, len(edges))
		for _, e := range edges {
			byTask[e.TaskID] = append(byTask[e.TaskID], e)
		}
		for i := range created {
			created[i].Dependencies = byTask[created[i].ID]
		}
		p.Tasks = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
