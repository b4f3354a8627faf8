package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Access roles, checked by the authz package.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleMember  = "member"
	RoleViewer  = "viewer"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email    string    `gorm:"type:varchar(255)" json:"email"`
	Role     string    `gorm:"type:varchar(32);not null;default:'member'" json:"role"`
	// JobRole is what template tasks match against via assignee_role.
	JobRole string `gorm:"type:varchar(64);index" json:"job_role"`
	Locale  string `gorm:"type:varchar(16);not null;default:'en'" json:"locale"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
