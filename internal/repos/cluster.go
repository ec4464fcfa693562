package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type ClusterRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Cluster) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Cluster, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Cluster, error)
}

type clusterRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClusterRepo(db *gorm.DB, baseLog *logger.Logger) ClusterRepo {
	return &clusterRepo{db: db, log: baseLog.With("repo", "ClusterRepo")}
}

func (r *clusterRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Cluster) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(row).Error
}

func (r *clusterRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Cluster, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Cluster
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

func (r *clusterRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Cluster{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *clusterRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Cluster, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Cluster
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
