package types

import (
	"time"

	"github.com/google/uuid"
)

type ChecklistCategory struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"column:title;not null;uniqueIndex" json:"title"`
	IconName string    `gorm:"column:icon_name" json:"icon_name"`
	IconBg   string    `gorm:"column:icon_bg" json:"icon_bg"`
	IsActive bool      `gorm:"column:is_active;not null" json:"is_active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ChecklistCategory) TableName() string { return "checklist_category" }
