package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ResourceService interface {
	Create(ctx context.Context, in CreateResourceInput) (*model.Resource, error)
	Assign(ctx context.Context, resourceID uuid.UUID, in CreateAssignmentInput) (*model.ResourceAssignment, error)
	Utilization(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*analytics.Utilization, error)
	// Capacity reports utilization of every resource over the range.
	Capacity(ctx context.Context, start, end time.Time) ([]analytics.Utilization, error)
}

type resourceService struct {
	r        repo.ResourceRepo
	projects repo.ProjectRepo
}

func NewResourceService(r repo.ResourceRepo, projects repo.ProjectRepo) ResourceService {
	return &resourceService{r: r, projects: projects}
}

type CreateResourceInput struct {
	UserID                 *uuid.UUID
	Name                   string
	WorkingHoursPerDay     float64
	AvailabilityPercentage float64
	HourlyRate             decimal.Decimal
}

func (s *resourceService) Create(ctx context.Context, in CreateResourceInput) (*model.Resource, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	hours := in.WorkingHoursPerDay
	if hours == 0 {
		hours = 8
	}
	if hours < 0 || hours > 24 {
		return nil, invalid("working_hours_per_day", "must be within 0..24")
	}
	availability := in.AvailabilityPercentage
	if availability == 0 {
		availability = 100
	}
	if availability < 0 || availability > 100 {
		return nil, invalid("availability_percentage", "must be within 0..100")
	}
	if in.HourlyRate.IsNegative() {
		return nil, invalid("hourly_rate", "must not be negative")
	}

	res := &model.Resource{
		UserID:                 in.UserID,
		Name:                   strings.TrimSpace(in.Name),
		WorkingHoursPerDay:     hours,
		AvailabilityPercentage: availability,
		HourlyRate:             in.HourlyRate.Round(2),
	}
	if err := s.r.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

type CreateAssignmentInput struct {
	ProjectID uuid.UUID
	TaskID    *uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Hours     float64
}

func (s *resourceService) Assign(ctx context.Context, resourceID uuid.UUID, in CreateAssignmentInput) (*model.ResourceAssignment, error) {
	start, end := model.Day(in.StartDate), model.Day(in.EndDate)
	if end.Before(start) {
		return nil, invalid("end_date", "must not be before start_date")
	}
	if in.Hours < 0 {
		return nil, invalid("hours", "must not be negative")
	}
	if _, err := s.r.Get(ctx, resourceID); err != nil {
		return nil, err
	}
	if _, err := s.projects.Get(ctx, in.ProjectID); err != nil {
		return nil, invalid("project_id", "unknown project")
	}

	a := &model.ResourceAssignment{
		ResourceID: resourceID,
		ProjectID:  in.ProjectID,
		TaskID:     in.TaskID,
		StartDate:  start,
		EndDate:    end,
		Hours:      in.Hours,
	}
	if err := s.r.CreateAssignment(ctx, a); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return a, nil
}

func (s *resourceService) Utilization(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (*analytics.Utilization, error) {
	if model.Day(end).Before(model.Day(start)) {
		return nil, invalid("end", "must not be before start")
	}
	res, err := s.r.Get(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.r.ListAssignments(ctx, resourceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	u := analytics.ResourceUtilization(res, assignments, start, end)
	return &u, nil
}

func (s *resourceService) Capacity(ctx context.Context, start, end time.Time) ([]analytics.Utilization, error) {
	if model.Day(end).Before(model.Day(start)) {
		return nil, invalid("end", "must not be before start")
	}
	resources, err := s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	out := make([]analytics.Utilization, 0, len(resources))
	for i := range resources {
		assignments, err := s.r.ListAssignments(ctx, resources[i].ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("load assignments: %w", err)
		}
		out = append(out, analytics.ResourceUtilization(&resources[i], assignments, start, end))
	}
	return out, nil
}
