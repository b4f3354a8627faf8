// Package templating plans the projects produced from a ProjectTemplate.
// It decides dates, assignees and dependency remapping; persistence happens
// in the repo layer inside a single transaction.
package templating

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bizplatform/pmcore/internal/modules/model"
	"github.com/bizplatform/pmcore/internal/pkg/graph"
	"github.com/google/uuid"
)

const (
	// calendar days between consecutive sequence numbers
	SequenceSpacingDays = 2
	HoursPerDay         = 8.0
)

var (
	ErrNonPositiveDuration = errors.New("template default duration must be positive")
	ErrDuplicateSequence   = errors.New("template task sequence numbers must be unique")
)

// MissingEndpointError reports a template edge whose task was never created.
type MissingEndpointError struct {
	Dependency uuid.UUID
	TaskID     uuid.UUID
}

func (e *MissingEndpointError) Error() string {
	return fmt.Sprintf("dependency %s references template task %s which has no instantiated task", e.Dependency, e.TaskID)
}

// Validate checks the template before it is stored or instantiated.
func Validate(t *model.ProjectTemplate) error {
	if t.DefaultDurationDays <= 0 {
		return ErrNonPositiveDuration
	}

	seen := make(map[int]struct{}, len(t.Tasks))
	ids := make(map[uuid.UUID]struct{}, len(t.Tasks))
	for _, tt := range t.Tasks {
		if _, dup := seen[tt.SequenceNumber]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateSequence, tt.SequenceNumber)
		}
		seen[tt.SequenceNumber] = struct{}{}
		ids[tt.ID] = struct{}{}
	}

	edges := make([]graph.Edge, 0, len(t.Dependencies))
	for _, d := range t.Dependencies {
		if _, ok := ids[d.TemplateTaskID]; !ok {
			return &MissingEndpointError{Dependency: d.ID, TaskID: d.TemplateTaskID}
		}
		if _, ok := ids[d.DependsOnID]; !ok {
			return &MissingEndpointError{Dependency: d.ID, TaskID: d.DependsOnID}
		}
		edges = append(edges, graph.Edge{From: d.TemplateTaskID, To: d.DependsOnID})
	}
	return graph.DetectCycle(edges)
}

// TaskStart is start + seq*2 days.
func TaskStart(projectStart time.Time, sequence int) time.Time {
	return model.Day(projectStart).AddDate(0, 0, sequence*SequenceSpacingDays)
}

// DurationDays converts estimated hours into whole working days, at least one.
func DurationDays(estimatedHours float64) int {
	days := int(math.Ceil(estimatedHours / HoursPerDay))
	if days < 1 {
		return 1
	}
	return days
}

// Request carries the caller's choices for a new project.
type Request struct {
	Name      string
	Code      string
	StartDate time.Time
	OwnerID   uuid.UUID
}

// Plan is the unsaved project and its tasks, in sequence order. Sources[i]
// is the template task Tasks[i] was cloned from.
type Plan struct {
	Project model.Project
	Tasks   []model.Task
	Sources []uuid.UUID
}

// Build lays out the project for req. candidates are the users that may be
// assigned through assignee_role; a role nobody holds leaves the task unassigned.
func Build(t *model.ProjectTemplate, req Request, candidates []model.User) Plan {
	start := model.Day(req.StartDate)
	templateID := t.ID

	p := Plan{
		Project: model.Project{
			Code:      req.Code,
			Name:      req.Name,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, t.DefaultDurationDays),
			Budget:    t.EstimatedBudget,
			Status:    model.ProjectPlanning,
			OwnerID:   req.OwnerID,
			NameI18n:  t.NameI18n,

			TemplateID: &templateID,
		},
	}

	ordered := make([]model.TemplateTask, len(t.Tasks))
	copy(ordered, t.Tasks)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].SequenceNumber < ordered[j].SequenceNumber })

	byRole := assigneesByRole(candidates)
	p.Tasks = make([]model.Task, 0, len(ordered))
	p.Sources = make([]uuid.UUID, 0, len(ordered))
	for _, tt := range ordered {
		taskStart := TaskStart(start, tt.SequenceNumber)
		due := taskStart.AddDate(0, 0, DurationDays(tt.EstimatedHours))
		priority := tt.Priority
		if !priority.Valid() {
			priority = model.PriorityMedium
		}

		task := model.Task{
			Title:          tt.Title,
			TitleI18n:      tt.TitleI18n,
			Status:         model.TaskTodo,
			Priority:       priority,
			EstimatedHours: tt.EstimatedHours,
			StartDate:      &taskStart,
			DueDate:        &due,
		}
		if id, ok := byRole[tt.AssigneeRole]; ok && tt.AssigneeRole != "" {
			assignee := id
			task.AssigneeID = &assignee
		}
		p.Tasks = append(p.Tasks, task)
		p.Sources = append(p.Sources, tt.ID)
	}
	return p
}

// RemapDependencies rewrites template edges onto the new tasks. mapping is
// template task id -> created task id.
func RemapDependencies(deps []model.TemplateDependency, mapping map[uuid.UUID]uuid.UUID) ([]model.TaskDependency, error) {
	out := make([]model.TaskDependency, 0, len(deps))
	for _, d := range deps {
		from, ok := mapping[d.TemplateTaskID]
		if !ok {
			return nil, &MissingEndpointError{Dependency: d.ID, TaskID: d.TemplateTaskID}
		}
		to, ok := mapping[d.DependsOnID]
		if !ok {
			return nil, &MissingEndpointError{Dependency: d.ID, TaskID: d.DependsOnID}
		}
		typ := d.Type
		if !typ.Valid() {
			typ = model.FinishToStart
		}
		out = append(out, model.TaskDependency{
			TaskID:      from,
			DependsOnID: to,
			Type:        typ,
			LagDays:     d.LagDays,
		})
	}
	return out, nil
}

// first user per job role, by username, so repeated runs pick the same person
func assigneesByRole(users []model.User) map[string]uuid.UUID {
	sorted := make([]model.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Username < sorted[j].Username })

	out := make(map[string]uuid.UUID, len(sorted))
	for _, u := range sorted {
		if u.JobRole == "" {
			continue
		}
		if _, ok := out[u.JobRole]; !ok {
			out[u.JobRole] = u.ID
		}
	}
	return out
}
