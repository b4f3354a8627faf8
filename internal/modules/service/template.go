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
	"github.com/bizplatform/pmcore/internal/pkg/metrics"
	"github.com/bizplatform/pmcore/internal/pkg/utils"
	"github.com/bizplatform/pmcore/internal/templating"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TemplateService interface {
	Create(ctx context.Context, in CreateTemplateInput) (*model.ProjectTemplate, error)
	Get(ctx context.Context, id uuid.UUID) (*model.ProjectTemplate, error)
	// Instantiate builds a new project from the template. It either creates
	// the project with every task and dependency or nothing at all.
	Instantiate(ctx context.Context, templateID uuid.UUID, in InstantiateInput) (*model.Project, error)
}

type templateService struct {
	r     repo.TemplateRepo
	users repo.UserRepo
	log   *zap.Logger
}

func NewTemplateService(r repo.TemplateRepo, users repo.UserRepo, log *zap.Logger) TemplateService {
	return &templateService{r: r, users: users, log: log}
}

type TemplateTaskInput struct {
	SequenceNumber int
	Title          string
	TitleI18n      map[string]string
	Description    string
	EstimatedHours float64
	AssigneeRole   string
	Priority       model.TaskPriority
}

// TemplateDependencyInput links tasks by sequence number.
type TemplateDependencyInput struct {
	TaskSequence      int
	DependsOnSequence int
	Type              model.DependencyType
	LagDays           int
}

type CreateTemplateInput struct {
	Name                string
	NameI18n            map[string]string
	CodePrefix          string
	Description         string
	DefaultDurationDays int
	EstimatedBudget     decimal.Decimal
	CreatedByID         uuid.UUID
	Tasks               []TemplateTaskInput
	Dependencies        []TemplateDependencyInput
}

func (s *templateService) Create(ctx context.Context, in CreateTemplateInput) (*model.ProjectTemplate, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	if in.EstimatedBudget.IsNegative() {
		return nil, invalid("estimated_budget", "must not be negative")
	}
	prefix := strings.ToUpper(strings.TrimSpace(in.CodePrefix))
	if prefix == "" {
		prefix = "PRJ"
	}

	t := &model.ProjectTemplate{
		ID:                  uuid.New(),
		Name:                strings.TrimSpace(in.Name),
		NameI18n:            jsonMap(in.NameI18n),
		CodePrefix:          prefix,
		Description:         in.Description,
		DefaultDurationDays: in.DefaultDurationDays,
		EstimatedBudget:     in.EstimatedBudget.Round(2),
		CreatedByID:         in.CreatedByID,
	}

	bySeq := make(map[int]uuid.UUID, len(in.Tasks))
	for i, tt := range in.Tasks {
		if strings.TrimSpace(tt.Title) == "" {
			return nil, invalid(fmt.Sprintf("tasks[%d].title", i), "must not be empty")
		}
		if tt.EstimatedHours < 0 {
			return nil, invalid(fmt.Sprintf("tasks[%d].estimated_hours", i), "must not be negative")
		}
		priority := tt.Priority
		if priority == "" {
			priority = model.PriorityMedium
		}
		if !priority.Valid() {
			return nil, invalid(fmt.Sprintf("tasks[%d].priority", i), fmt.Sprintf("unknown priority %q", tt.Priority))
		}
		task := model.TemplateTask{
			ID:             uuid.New(),
			TemplateID:     t.ID,
			SequenceNumber: tt.SequenceNumber,
			Title:          strings.TrimSpace(tt.Title),
			TitleI18n:      jsonMap(tt.TitleI18n),
			Description:    tt.Description,
			EstimatedHours: tt.EstimatedHours,
			AssigneeRole:   strings.TrimSpace(tt.AssigneeRole),
			Priority:       priority,
		}
		bySeq[tt.SequenceNumber] = task.ID
		t.Tasks = append(t.Tasks, task)
	}

	for i, d := range in.Dependencies {
		from, ok := bySeq[d.TaskSequence]
		if !ok {
			return nil, invalid(fmt.Sprintf("dependencies[%d].task_sequence", i), "no task with this sequence number")
		}
		to, ok := bySeq[d.DependsOnSequence]
		if !ok {
			return nil, invalid(fmt.Sprintf("dependencies[%d].depends_on_sequence", i), "no task with this sequence number")
		}
		typ := d.Type
		if typ == "" {
			typ = model.FinishToStart
		}
		if !typ.Valid() {
			return nil, invalid(fmt.Sprintf("dependencies[%d].type", i), fmt.Sprintf("unknown dependency type %q", d.Type))
		}
		t.Dependencies = append(t.Dependencies, model.TemplateDependency{
			TemplateID:     t.ID,
			TemplateTaskID: from,
			DependsOnID:    to,
			Type:           typ,
			LagDays:        d.LagDays,
		})
	}

	if err := templating.Validate(t); err != nil {
		return nil, templateConfigError(err)
	}
	if err := s.r.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	s.log.Sugar().Infow("template created", "template_id", t.ID, "tasks", len(t.Tasks), "dependencies", len(t.Dependencies))
	return t, nil
}

func templateConfigError(err error) error {
	switch {
	case errors.Is(err, templating.ErrNonPositiveDuration):
		return invalid("default_duration_days", "must be positive")
	case errors.Is(err, templating.ErrDuplicateSequence):
		return invalid("tasks", err.Error())
	case errors.Is(err, graph.ErrCycle):
		return invalid("dependencies", err.Error())
	}
	return invalid("dependencies", err.Error())
}

func (s *templateService) Get(ctx context.Context, id uuid.UUID) (*model.ProjectTemplate, error) {
	return s.r.Get(ctx, id)
}

type InstantiateInput struct {
	Name      string
	Code      string
	StartDate time.Time
	OwnerID   uuid.UUID
	MemberIDs []uuid.UUID
}

func (s *templateService) Instantiate(ctx context.Context, templateID uuid.UUID, in InstantiateInput) (p *model.Project, err error) {
	defer func() { metrics.RecordInstantiation(err) }()

	t, err := s.r.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if in.StartDate.IsZero() {
		return nil, invalid("start_date", "is required")
	}
	// stored rows are validated again; they may predate the cycle check
	if verr := templating.Validate(t); verr != nil {
		return nil, &InstantiationError{TemplateID: templateID, Err: verr}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = t.Name
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		if code, err = utils.GenerateProjectCode(t.CodePrefix); err != nil {
			return nil, fmt.Errorf("generate project code: %w", err)
		}
	}

	candidates, err := s.users.ListByIDs(ctx, append([]uuid.UUID{in.OwnerID}, in.MemberIDs...))
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}

	plan := templating.Build(t, templating.Request{
		Name:      name,
		Code:      code,
		StartDate: in.StartDate,
		OwnerID:   in.OwnerID,
	}, candidates)

	p, err = s.r.Instantiate(ctx, &plan, t.Dependencies, in.MemberIDs)
	if err != nil {
		s.log.Sugar().Errorw("template instantiation rolled back", "template_id", templateID, "err", err)
		return nil, &InstantiationError{TemplateID: templateID, Err: err}
	}
	s.log.Sugar().Infow("template instantiated", "template_id", templateID, "project_id", p.ID, "tasks", len(p.Tasks))
	return p, nil
}
