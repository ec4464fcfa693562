package types

import (
	"time"

	"github.com/google/uuid"
)

// Cluster is a geographic administrative unit, smaller than a district. Most
// settings and all completion tracking are scoped by it.
type Cluster struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"column:name;not null;uniqueIndex" json:"name"`
	District string    `gorm:"column:district" json:"district"`
	State    string    `gorm:"column:state" json:"state"`
	IsActive bool      `gorm:"column:is_active;not null" json:"is_active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Cluster) TableName() string { return "cluster" }
