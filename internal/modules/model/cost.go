package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CostCategory string

const (
	CostLabor     CostCategory = "labor"
	CostMaterials CostCategory = "materials"
	CostEquipment CostCategory = "equipment"
	CostOther     CostCategory = "other"
)

func (c CostCategory) Valid() bool {
	switch c {
	case CostLabor, CostMaterials, CostEquipment, CostOther:
		return true
	}
	return false
}

// ProjectCost is an append-only ledger entry.
type ProjectCost struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID       `gorm:"type:uuid;not null;index:ix_cost_project_id_date,priority:1" json:"project_id"`
	Category    CostCategory    `gorm:"type:text;not null;check:category IN ('labor','materials','equipment','other')" json:"category"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" swaggertype:"string" json:"amount"`
	Date        time.Time       `gorm:"type:date;not null;index:ix_cost_project_id_date,priority:2" json:"date"`
	Description string          `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ProjectCost) TableName() string { return "project_costs" }

func (c *ProjectCost) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
