package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/pkg/graph"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService interface {
	Create(ctx context.Context, projectID uuid.UUID, in CreateTaskInput) (*model.Task, error)
	UpdateStatus(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID, in UpdateTaskStatusInput) (*model.Task, error)
	AddDependency(ctx context.Context, projectID uuid.UUID, in CreateDependencyInput) (*model.TaskDependency, error)
}

type taskService struct {
	r   repo.TaskRepo
	now Clock
	log *zap.Logger
}

func NewTaskService(r repo.TaskRepo, now Clock, log *zap.Logger) TaskService {
	return &taskService{r: r, now: now, log: log}
}

type CreateTaskInput struct {
	Title          string
	TitleI18n      map[string]string
	Priority       model.TaskPriority
	EstimatedHours float64
	StartDate      *time.Time
	DueDate        *time.Time
	AssigneeID     *uuid.UUID
}

func (s *taskService) Create(ctx context.Context, projectID uuid.UUID, in CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, invalid("title", "must not be empty")
	}
	if in.EstimatedHours < 0 {
		return nil, invalid("estimated_hours", "must not be negative")
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, invalid("priority", fmt.Sprintf("unknown priority %q", priority))
	}

	t := &model.Task{
		ProjectID:      projectID,
		Title:          strings.TrimSpace(in.Title),
		TitleI18n:      jsonMap(in.TitleI18n),
		Status:         model.TaskTodo,
		Priority:       priority,
		EstimatedHours: in.EstimatedHours,
		StartDate:      dayPtr(in.StartDate),
		DueDate:        dayPtr(in.DueDate),
		AssigneeID:     in.AssigneeID,
	}
	if t.StartDate != nil && t.DueDate != nil && t.DueDate.Before(*t.StartDate) {
		return nil, invalid("due_date", "must not be before start_date")
	}
	if _, err := s.r.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

type UpdateTaskStatusInput struct {
	Status      model.TaskStatus
	ActualHours *float64
}

// UpdateStatus moves a task to a new status. Entering done stamps CompletedAt,
// leaving done clears it, so velocity only counts tasks that are still done.
func (s *taskService) UpdateStatus(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID, in UpdateTaskStatusInput) (*model.Task, error) {
	if !in.Status.Valid() {
		return nil, invalid("status", fmt.Sprintf("unknown status %q", in.Status))
	}
	if in.ActualHours != nil && *in.ActualHours < 0 {
		return nil, invalid("actual_hours", "must not be negative")
	}

	t, err := s.r.Get(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	switch {
	case in.Status == model.TaskDone && !t.Done():
		now := s.now()
		t.CompletedAt = &now
	case in.Status != model.TaskDone:
		t.CompletedAt = nil
	}
	t.Status = in.Status
	if in.ActualHours != nil {
		t.ActualHours = *in.ActualHours
	}

	pct, err := s.r.Save(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	s.log.Sugar().Debugw("task status changed", "project_id", projectID, "task_id", taskID, "status", t.Status, "progress", pct.String())
	return t, nil
}

type CreateDependencyInput struct {
	TaskID      uuid.UUID
	DependsOnID uuid.UUID
	Type        model.DependencyType
	LagDays     int
}

func (s *taskService) AddDependency(ctx context.Context, projectID uuid.UUID, in CreateDependencyInput) (*model.TaskDependency, error) {
	typ := in.Type
	if typ == "" {
		typ = model.FinishToStart
	}
	if !typ.Valid() {
		return nil, invalid("type", fmt.Sprintf("unknown dependency type %q", in.Type))
	}
	if in.TaskID == in.DependsOnID {
		return nil, invalid("depends_on_id", "a task cannot depend on itself")
	}

	d := &model.TaskDependency{
		TaskID:      in.TaskID,
		DependsOnID: in.DependsOnID,
		Type:        typ,
		LagDays:     in.LagDays,
	}
	if err := s.r.CreateDependency(ctx, projectID, d); err != nil {
		switch {
		case errors.Is(err, graph.ErrCycle):
			return nil, invalid("depends_on_id", err.Error())
		case errors.Is(err, repo.ErrNotFound):
			return nil, invalid("depends_on_id", "both tasks must belong to the project")
		case errors.Is(err, repo.ErrDuplicate):
			return nil, invalid("depends_on_id", "dependency already exists")
		}
		return nil, fmt.Errorf("create dependency: %w", err)
	}
	return d, nil
}
