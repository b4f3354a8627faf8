package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

type Project struct {
	ID       uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Code     string            `gorm:"type:varchar(32);uniqueIndex;not null" json:"code"`
	Name     string            `gorm:"type:varchar(255);not null" json:"name"`
	NameI18n datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"name_i18n,omitempty"`

	StartDate time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time       `gorm:"type:date;not null" json:"end_date"`
	Budget    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" swaggertype:"string" json:"budget"`
	Status    ProjectStatus   `gorm:"type:text;not null;default:'planning';check:status IN ('planning','active','on_hold','completed','cancelled')" json:"status"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`

	// refreshed by the task write path, never authoritative for analytics
	ProgressPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" swaggertype:"string" json:"progress_percentage"`

	TemplateID *uuid.UUID `gorm:"type:uuid;index" json:"template_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> User
	Owner       *User  `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"owner,omitempty"`
	TeamMembers []User `gorm:"many2many:project_members;" json:"team_members,omitempty"`

	// Project <-> Task
	Tasks []Task `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tasks,omitempty"`

	// Project <-> ProjectCost
	Costs []ProjectCost `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"costs,omitempty"`

	// Project <-> ProjectMetricsSnapshot
	Snapshots []ProjectMetricsSnapshot `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasMember reports whether userID owns the project or belongs to its team.
func (p *Project) HasMember(userID uuid.UUID) bool {
	if p.OwnerID == userID {
		return true
	}
	for _, m := range p.TeamMembers {
		if m.ID == userID {
			return true
		}
	}
	return false
}

func (p *Project) Translations(field string) map[string]string {
	switch field {
	case "name":
		return stringMap(p.NameI18n)
	}
	return nil
}

func stringMap(m datatypes.JSONMap) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
