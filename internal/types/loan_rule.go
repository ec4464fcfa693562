package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LoanRuleStatusActive   = "active"
	LoanRuleStatusInactive = "inactive"
)

type LoanRule struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClusterID       uuid.UUID `gorm:"type:uuid;not null;index" json:"cluster_id"`
	Cluster         *Cluster  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClusterID;references:ID" json:"cluster,omitempty"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	InterestRate    float64   `gorm:"column:interest_rate;not null;default:0" json:"interest_rate"`
	MaxTenureMonths int       `gorm:"column:max_tenure_months;not null;default:0" json:"max_tenure_months"`
	MinAmount       float64   `gorm:"column:min_amount;not null;default:0" json:"min_amount"`
	MaxAmount       float64   `gorm:"column:max_amount;not null;default:0" json:"max_amount"`
	Status          string    `gorm:"column:status;not null;default:'active'" json:"status"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LoanRule) TableName() string { return "loan_rule" }
