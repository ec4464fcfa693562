package types

import (
	"time"

	"github.com/google/uuid"
)

// ModuleCompletion is the registry row for one (module, cluster) pair. The
// composite unique index is what makes the registry upsert safe: concurrent
// writers for the same key serialize on it instead of racing to two rows.
// Rows are overwritten in place on recompute and never deleted.
type ModuleCompletion struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ModuleName      ModuleName `gorm:"column:module_name;type:text;not null;index:idx_module_cluster,unique,priority:1" json:"module_name"`
	ClusterID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_module_cluster,unique,priority:2" json:"cluster_id"`
	Cluster         *Cluster   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClusterID;references:ID" json:"cluster,omitempty"`
	Completed       bool       `gorm:"column:completed;not null" json:"completed"`
	ProgressPercent int        `gorm:"column:progress_percent;not null" json:"progress_percent"`
	Category        string     `gorm:"column:category" json:"category"`
	IconName        string     `gorm:"column:icon_name" json:"icon_name"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ModuleCompletion) TableName() string { return "module_completion" }
