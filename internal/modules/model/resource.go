package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Resource struct {
	ID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name   string     `gorm:"type:varchar(255);not null" json:"name"`

	WorkingHoursPerDay     float64         `gorm:"not null;default:8" json:"working_hours_per_day"`
	AvailabilityPercentage float64         `gorm:"not null;default:100" json:"availability_percentage"`
	HourlyRate             decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" swaggertype:"string" json:"hourly_rate"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Assignments []ResourceAssignment `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"assignments,omitempty"`
}

func (Resource) TableName() string { return "resources" }

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ResourceAssignment books Hours of a resource spread evenly over
// [StartDate, EndDate], both inclusive.
type ResourceAssignment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ResourceID uuid.UUID  `gorm:"type:uuid;not null;index:ix_assignment_resource_dates,priority:1" json:"resource_id"`
	ProjectID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	TaskID     *uuid.UUID `gorm:"type:uuid;index" json:"task_id,omitempty"`

	StartDate time.Time `gorm:"type:date;not null;index:ix_assignment_resource_dates,priority:2" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null;index:ix_assignment_resource_dates,priority:3" json:"end_date"`
	Hours     float64   `gorm:"not null" json:"hours"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Resource *Resource `gorm:"foreignKey:ResourceID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ResourceAssignment) TableName() string { return "resource_assignments" }

func (a *ResourceAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TotalDays is the inclusive length of the assignment window.
func (a *ResourceAssignment) TotalDays() int {
	return DaysBetween(a.StartDate, a.EndDate) + 1
}
