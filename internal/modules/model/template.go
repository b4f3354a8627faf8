package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectTemplate is a reusable task graph with relative scheduling.
// Instantiation copies it; projects never reference template rows.
type ProjectTemplate struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"type:varchar(255);not null" json:"name"`
	NameI18n    datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"name_i18n,omitempty"`
	CodePrefix  string            `gorm:"type:varchar(8);not null;default:'PRJ'" json:"code_prefix"`
	Description string            `gorm:"type:text" json:"description"`

	DefaultDurationDays int             `gorm:"not null" json:"default_duration_days"`
	EstimatedBudget     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" swaggertype:"string" json:"estimated_budget"`
	CreatedByID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"created_by_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Tasks        []TemplateTask       `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tasks"`
	Dependencies []TemplateDependency `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"dependencies"`
}

func (ProjectTemplate) TableName() string { return "project_templates" }

func (t *ProjectTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *ProjectTemplate) Translations(field string) map[string]string {
	switch field {
	case "name":
		return stringMap(t.NameI18n)
	}
	return nil
}

type TemplateTask struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	TemplateID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_template_task_sequence,priority:1" json:"template_id"`
	SequenceNumber int               `gorm:"not null;uniqueIndex:uq_template_task_sequence,priority:2" json:"sequence_number"`
	Title          string            `gorm:"type:varchar(255);not null" json:"title"`
	TitleI18n      datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"title_i18n,omitempty"`
	Description    string            `gorm:"type:text" json:"description"`
	EstimatedHours float64           `gorm:"not null;default:0" json:"estimated_hours"`
	AssigneeRole   string            `gorm:"type:varchar(64)" json:"assignee_role"`
	Priority       TaskPriority      `gorm:"type:text;not null;default:'medium'" json:"priority"`
}

func (TemplateTask) TableName() string { return "template_tasks" }

func (t *TemplateTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *TemplateTask) Translations(field string) map[string]string {
	switch field {
	case "title":
		return stringMap(t.TitleI18n)
	}
	return nil
}

// TemplateDependency is an edge TemplateTaskID -> DependsOnID within one template.
type TemplateDependency struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TemplateID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"template_id"`
	TemplateTaskID uuid.UUID      `gorm:"type:uuid;not null" json:"template_task_id"`
	DependsOnID    uuid.UUID      `gorm:"type:uuid;not null" json:"depends_on_id"`
	Type           DependencyType `gorm:"type:text;not null;default:'finish_to_start'" json:"type"`
	LagDays        int            `gorm:"not null;default:0" json:"lag_days"`
}

func (TemplateDependency) TableName() string { return "template_dependencies" }

func (d *TemplateDependency) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
