package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectMetricsSnapshot is the frozen metrics of one project on one day.
// (project_id, snapshot_date) is unique; writes for the same day overwrite.
type ProjectMetricsSnapshot struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_snapshot_project_date,priority:1" json:"project_id"`
	SnapshotDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_snapshot_project_date,priority:2" json:"snapshot_date"`

	TasksTotal         int             `gorm:"not null;default:0" json:"tasks_total"`
	TasksCompleted     int             `gorm:"not null;default:0" json:"tasks_completed"`
	TasksOverdue       int             `gorm:"not null;default:0" json:"tasks_overdue"`
	ProgressPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" swaggertype:"string" json:"progress_percentage"`
	HealthScore        int             `gorm:"not null;default:0" json:"health_score"`
	Velocity           float64         `gorm:"not null;default:0" json:"velocity"`

	PlannedValue     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" swaggertype:"string" json:"planned_value"`
	EarnedValue      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" swaggertype:"string" json:"earned_value"`
	ActualCost       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" swaggertype:"string" json:"actual_cost"`
	CostVariance     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" swaggertype:"string" json:"cost_variance"`
	ScheduleVariance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" swaggertype:"string" json:"schedule_variance"`
	CPI              decimal.Decimal `gorm:"column:cpi;type:numeric(8,4);not null;default:1" swaggertype:"string" json:"cpi"`
	SPI              decimal.Decimal `gorm:"column:spi;type:numeric(8,4);not null;default:1" swaggertype:"string" json:"spi"`

	// Extra holds derived figures that have no dedicated column (EAC, ETC, ...).
	Extra datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"extra,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ProjectMetricsSnapshot) TableName() string { return "project_metrics_snapshots" }

func (s *ProjectMetricsSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Remaining is the open task count recorded by the snapshot.
func (s *ProjectMetricsSnapshot) Remaining() int {
	return s.TasksTotal - s.TasksCompleted
}
