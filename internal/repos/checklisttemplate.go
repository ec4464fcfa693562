package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type ChecklistTemplateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.ChecklistTemplate) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ChecklistTemplate, error)
	NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ChecklistTemplate, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.ChecklistTemplate) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Ensure(ctx context.Context, tx *gorm.DB, row *types.ChecklistTemplate) error
}

type checklistTemplateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChecklistTemplateRepo(db *gorm.DB, baseLog *logger.Logger) ChecklistTemplateRepo {
	return &checklistTemplateRepo{db: db, log: baseLog.With("repo", "ChecklistTemplateRepo")}
}

func (r *checklistTemplateRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ChecklistTemplate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(row).Error
}

func (r *checklistTemplateRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ChecklistTemplate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ChecklistTemplate
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

func (r *checklistTemplateRepo) NameExists(ctx context.Context, tx *gorm.DB, name string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ChecklistTemplate{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAll returns templates newest first.
func (r *checklistTemplateRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.ChecklistTemplate, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ChecklistTemplate
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *checklistTemplateRepo) Update(ctx context.Context, tx *gorm.DB, row *types.ChecklistTemplate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Save(row).Error
}

// Delete removes the row outright; templates carry no soft-delete column and
// nothing references them.
func (r *checklistTemplateRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.ChecklistTemplate{}).Error
}

func (r *checklistTemplateRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ChecklistTemplate{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure creates the template only if no row with the same name exists. The
// lookup goes through the name alone; on a hit, row is overwritten with the
// stored state.
func (r *checklistTemplateRepo) Ensure(ctx context.Context, tx *gorm.DB, row *types.ChecklistTemplate) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	var existing types.ChecklistTemplate
	err := transaction.WithContext(ctx).
		Where("name = ?", row.Name).
		First(&existing).Error
	if err == nil {
		*row = existing
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(row).Error
}
