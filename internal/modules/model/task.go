package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskInReview   TaskStatus = "in_review"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskInReview, TaskBlocked, TaskDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Task struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:ix_task_project_id;index:ix_task_project_id_status,priority:1" json:"project_id"`

	Title     string            `gorm:"type:varchar(255);not null" json:"title"`
	TitleI18n datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"title_i18n,omitempty"`
	Status    TaskStatus        `gorm:"type:text;not null;default:'todo';check:status IN ('todo','in_progress','in_review','blocked','done');index:ix_task_project_id_status,priority:2" json:"status"`
	Priority  TaskPriority      `gorm:"type:text;not null;default:'medium'" json:"priority"`

	EstimatedHours float64 `gorm:"not null;default:0" json:"estimated_hours"`
	ActualHours    float64 `gorm:"not null;default:0" json:"actual_hours"`

	StartDate   *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	AssigneeID *uuid.UUID `gorm:"type:uuid;index" json:"assignee_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Task <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Task <-> User
	Assignee *User `gorm:"foreignKey:AssigneeID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"assignee,omitempty"`

	// outgoing edges: this task depends on others
	Dependencies []TaskDependency `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"dependencies,omitempty"`
}

func (Task) TableName() string { return "tasks" }

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Task) Done() bool { return t.Status == TaskDone }

// DoneAsOf reports whether the task had been completed by asOf. A done task
// without a completion stamp counts as done on every date.
func (t *Task) DoneAsOf(asOf time.Time) bool {
	if !t.Done() {
		return false
	}
	return t.CompletedAt == nil || !Day(*t.CompletedAt).After(Day(asOf))
}

// Overdue reports whether the task was still open past its due date on asOf.
func (t *Task) Overdue(asOf time.Time) bool {
	if t.DoneAsOf(asOf) || t.DueDate == nil {
		return false
	}
	return Day(*t.DueDate).Before(Day(asOf))
}

func (t *Task) Translations(field string) map[string]string {
	switch field {
	case "title":
		return stringMap(t.TitleI18n)
	}
	return nil
}

type DependencyType string

const (
	FinishToStart  DependencyType = "finish_to_start"
	StartToStart   DependencyType = "start_to_start"
	FinishToFinish DependencyType = "finish_to_finish"
	StartToFinish  DependencyType = "start_to_finish"
)

func (d DependencyType) Valid() bool {
	switch d {
	case FinishToStart, StartToStart, FinishToFinish, StartToFinish:
		return true
	}
	return false
}

// TaskDependency is an edge TaskID -> DependsOnID inside one project.
type TaskDependency struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TaskID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_task_dependency,priority:1" json:"task_id"`
	DependsOnID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_task_dependency,priority:2;index" json:"depends_on_id"`
	Type        DependencyType `gorm:"type:text;not null;default:'finish_to_start'" json:"type"`
	LagDays     int            `gorm:"not null;default:0" json:"lag_days"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	DependsOn *Task `gorm:"foreignKey:DependsOnID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (TaskDependency) TableName() string { return "task_dependencies" }

func (d *TaskDependency) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
