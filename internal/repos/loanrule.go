package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type LoanRuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.LoanRule) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LoanRule, error)
	GetByClusterID(ctx context.Context, tx *gorm.DB, clusterID uuid.UUID) ([]*types.LoanRule, error)
	GetActiveByClusterID(ctx context.Context, tx *gorm.DB, clusterID uuid.UUID) ([]*types.LoanRule, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.LoanRule) error
	SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type loanRuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLoanRuleRepo(db *gorm.DB, baseLog *logger.Logger) LoanRuleRepo {
	return &loanRuleRepo{db: db, log: baseLog.With("repo", "LoanRuleRepo")}
}

func (r *loanRuleRepo) Create(ctx context.Context, tx *gorm.DB, row *types.LoanRule) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(row).Error
}

func (r *loanRuleRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LoanRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.LoanRule
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *loanRuleRepo) GetByClusterID(ctx context.Context, tx *gorm.DB, clusterID uuid.UUID) ([]*types.LoanRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.LoanRule
	if clusterID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("cluster_id = ?", clusterID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetActiveByClusterID is the evaluator-facing query: live rules only,
// scoped to one cluster.
func (r *loanRuleRepo) GetActiveByClusterID(ctx context.Context, tx *gorm.DB, clusterID uuid.UUID) ([]*types.LoanRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.LoanRule
	if clusterID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("cluster_id = ? AND status = ?", clusterID, types.LoanRuleStatusActive).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *loanRuleRepo) Update(ctx context.Context, tx *gorm.DB, row *types.LoanRule) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Save(row).Error
}

func (r *loanRuleRepo) SoftDeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.LoanRule{}).Error
}
