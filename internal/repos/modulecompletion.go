package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type ModuleCompletionRepo interface {
	GetByClusterID(ctx context.Context, tx *gorm.DB, clusterID uuid.UUID) ([]*types.ModuleCompletion, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ModuleCompletion, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.ModuleCompletion) error
}

type moduleCompletionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModuleCompletionRepo(db *gorm.DB, baseLog *logger.Logger) ModuleCompletionRepo {
	return &moduleCompletionRepo{db: db, log: baseLog.With("repo", "ModuleCompletionRepo")}
}

func (r *moduleCompletionRepo) GetByClusterID(ctx context.Context, tx *gorm.DB, clusterID uuid.UUID) ([]*types.ModuleCompletion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ModuleCompletion
	if clusterID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("cluster_id = ?", clusterID).
		Order("module_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *moduleCompletionRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ModuleCompletion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ModuleCompletion
	if err := transaction.WithContext(ctx).
		Order("module_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Upsert is the registry's single write primitive. It rides the
// idx_module_cluster unique index: concurrent writers for the same
// (module_name, cluster_id) serialize to last-writer-wins, and a second row
// for the key cannot exist.
func (r *moduleCompletionRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.ModuleCompletion) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "module_name"}, {Name: "cluster_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"completed", "progress_percent", "category", "icon_name", "updated_at",
			}),
		}).
		Create(row).Error
}
