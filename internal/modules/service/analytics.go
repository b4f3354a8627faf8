package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizplatform/pmcore/internal/analytics"
	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/modules/repo"
	"github.com/bizplatform/pmcore/internal/pkg/i18n"
	"github.com/bizplatform/pmcore/internal/pkg/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/bizplatform/pmcore/internal/modules/service")

type AnalyticsService interface {
	// ComputeAll returns every metric of the project as of today.
	ComputeAll(ctx context.Context, projectID uuid.UUID, locale string) (*analytics.Metrics, error)
	ComputeAsOf(ctx context.Context, projectID uuid.UUID, asOf time.Time, locale string) (*analytics.Metrics, error)
	Burndown(ctx context.Context, projectID uuid.UUID) (*analytics.Burndown, error)
	Portfolio(ctx context.Context, user *model.User) (*analytics.Portfolio, error)
}

type analyticsService struct {
	projects      repo.ProjectRepo
	snapshots     repo.SnapshotRepo
	opts          analytics.Options
	defaultLocale string
	now           Clock
	log           *zap.Logger
}

func NewAnalyticsService(projects repo.ProjectRepo, snapshots repo.SnapshotRepo, opts analytics.Options, defaultLocale string, now Clock, log *zap.Logger) AnalyticsService {
	if defaultLocale == "" {
		defaultLocale = i18n.DefaultLocale
	}
	return &analyticsService{
		projects:      projects,
		snapshots:     snapshots,
		opts:          opts,
		defaultLocale: defaultLocale,
		now:           now,
		log:           log,
	}
}

func (s *analyticsService) ComputeAll(ctx context.Context, projectID uuid.UUID, locale string) (*analytics.Metrics, error) {
	m, err := s.ComputeAsOf(ctx, projectID, s.now(), locale)
	if err != nil {
		return nil, err
	}
	metrics.ObserveProjectHealth(m.HealthScore)
	return m, nil
}

func (s *analyticsService) ComputeAsOf(ctx context.Context, projectID uuid.UUID, asOf time.Time, locale string) (*analytics.Metrics, error) {
	ctx, span := tracer.Start(ctx, "analytics.compute")
	defer span.End()
	span.SetAttributes(attribute.String("project_id", projectID.String()))

	start := time.Now()
	defer func() { metrics.ObserveCompute("compute_all", time.Since(start)) }()

	g, err := s.projects.LoadGraph(ctx, projectID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	m := s.compute(g, asOf, locale)
	span.SetAttributes(attribute.Int("health_score", m.HealthScore), attribute.Bool("at_risk", m.AtRisk))
	return &m, nil
}

func (s *analyticsService) compute(g *repo.ProjectGraph, asOf time.Time, locale string) analytics.Metrics {
	m := analytics.Compute(analytics.Input{
		Project: g.Project,
		Tasks:   g.Tasks,
		Costs:   g.Costs,
		AsOf:    asOf,
	}, s.opts)
	if name := i18n.LocalizedField(g.Project, "name", locale, s.defaultLocale); name != "" {
		m.ProjectName = name
	}
	return m
}

func (s *analyticsService) Burndown(ctx context.Context, projectID uuid.UUID) (*analytics.Burndown, error) {
	g, err := s.projects.LoadGraph(ctx, projectID)
	if err != nil {
		return nil, err
	}
	p := g.Project
	snaps, err := s.snapshots.ListRange(ctx, projectID, p.StartDate, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	b := analytics.BurndownSeries(p.StartDate, p.EndDate, len(g.Tasks), snaps)
	return &b, nil
}

// Portfolio rolls up the projects the user owns or belongs to. Admins see all.
func (s *analyticsService) Portfolio(ctx context.Context, user *model.User) (*analytics.Portfolio, error) {
	ctx, span := tracer.Start(ctx, "analytics.portfolio")
	defer span.End()

	start := time.Now()
	defer func() { metrics.ObserveCompute("portfolio", time.Since(start)) }()

	projects, err := s.projects.ListForUser(ctx, user.ID, user.Role == model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	asOf := s.now()
	summaries := make([]analytics.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		g, err := s.projects.LoadGraph(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("load project %s: %w", p.ID, err)
		}
		m := s.compute(g, asOf, user.Locale)
		summaries = append(summaries, m.Summary())
	}
	span.SetAttributes(attribute.Int("projects", len(summaries)))

	out := analytics.Rollup(summaries)
	return &out, nil
}
