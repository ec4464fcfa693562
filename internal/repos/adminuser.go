package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type AdminUserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.AdminUser) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AdminUser, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.AdminUser, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type adminUserRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdminUserRepo(db *gorm.DB, baseLog *logger.Logger) AdminUserRepo {
	return &adminUserRepo{db: db, log: baseLog.With("repo", "AdminUserRepo")}
}

func (r *adminUserRepo) Create(ctx context.Context, tx *gorm.DB, row *types.AdminUser) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(row).Error
}

func (r *adminUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AdminUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.AdminUser
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

func (r *adminUserRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.AdminUser, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.AdminUser
	err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *adminUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AdminUser{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
