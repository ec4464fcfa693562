package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TemplateStatusActive   = "active"
	TemplateStatusInactive = "inactive"

	TemplateCompletionCompleted = "completed"
	TemplateCompletionPending   = "pending"
)

// ChecklistItem is one row of a template. Order is the authoritative sequence;
// insertion order of the slice carries no meaning.
type ChecklistItem struct {
	ItemName string `json:"item_name"`
	Required bool   `json:"required"`
	Order    int    `json:"order"`
}

type ChecklistTemplate struct {
	ID               uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string                             `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Items            datatypes.JSONSlice[ChecklistItem] `gorm:"column:items" json:"items"`
	Status           string                             `gorm:"column:status;not null;default:'active'" json:"status"`
	CompletionStatus string                             `gorm:"column:completion_status;not null;default:'pending'" json:"completion_status"`
	Category         string                             `gorm:"column:category" json:"category"`
	IconName         string                             `gorm:"column:icon_name" json:"icon_name"`
	IconBg           string                             `gorm:"column:icon_bg" json:"icon_bg"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ChecklistTemplate) TableName() string { return "checklist_template" }
