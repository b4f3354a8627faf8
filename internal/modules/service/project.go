package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListForUser(ctx context.Context, user *model.User) ([]*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddCost(ctx context.Context, projectID uuid.UUID, in CreateCostInput) (*model.ProjectCost, error)
}

type projectService struct {
	r     repo.ProjectRepo
	costs repo.CostRepo
	log   *zap.Logger
}

func NewProjectService(r repo.ProjectRepo, costs repo.CostRepo, log *zap.Logger) ProjectService {
	return &projectService{r: r, costs: costs, log: log}
}

type CreateProjectInput struct {
	Code      string
	Name      string
	NameI18n  map[string]string
	StartDate time.Time
	EndDate   time.Time
	Budget    decimal.Decimal
	Status    model.ProjectStatus
	OwnerID   uuid.UUID
	MemberIDs []uuid.UUID
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	start, end := model.Day(in.StartDate), model.Day(in.EndDate)
	if end.Before(start) {
		return nil, invalid("end_date", "must not be before start_date")
	}
	if in.Budget.IsNegative() {
		return nil, invalid("budget", "must not be negative")
	}
	status := in.Status
	if status == "" {
		status = model.ProjectPlanning
	}
	if !status.Valid() {
		return nil, invalid("status", fmt.Sprintf("unknown status %q", status))
	}

	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		var err error
		if code, err = utils.GenerateProjectCode("PRJ"); err != nil {
			return nil, fmt.Errorf("generate project code: %w", err)
		}
	}

	p := &model.Project{
		Code:      code,
		Name:      strings.TrimSpace(in.Name),
		NameI18n:  jsonMap(in.NameI18n),
		StartDate: start,
		EndDate:   end,
		Budget:    in.Budget.Round(2),
		Status:    status,
		OwnerID:   in.OwnerID,
	}
	if err := s.r.Create(ctx, p, in.MemberIDs); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, invalid("member_ids", "unknown user")
		}
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.log.Sugar().Infow("project created", "project_id", p.ID, "code", p.Code)
	return p, nil
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.r.Get(ctx, id)
}

func (s *projectService) ListForUser(ctx context.Context, user *model.User) ([]*model.Project, error) {
	return s.r.ListForUser(ctx, user.ID, user.Role == model.RoleAdmin)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Sugar().Infow("project deleted", "project_id", id)
	return nil
}

type CreateCostInput struct {
	Category    model.CostCategory
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

func (s *projectService) AddCost(ctx context.Context, projectID uuid.UUID, in CreateCostInput) (*model.ProjectCost, error) {
	if !in.Category.Valid() {
		return nil, invalid("category", fmt.Sprintf("unknown category %q", in.Category))
	}
	if in.Amount.IsNegative() {
		return nil, invalid("amount", "must not be negative")
	}
	c := &model.ProjectCost{
		ProjectID:   projectID,
		Category:    in.Category,
		Amount:      in.Amount.Round(2),
		Date:        model.Day(in.Date),
		Description: in.Description,
	}
	if err := s.costs.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create cost: %w", err)
	}
	return c, nil
}
