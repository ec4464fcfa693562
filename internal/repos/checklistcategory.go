package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type ChecklistCategoryRepo interface {
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.ChecklistCategory, error)
	GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.ChecklistCategory, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.ChecklistCategory) error
	Ensure(ctx context.Context, tx *gorm.DB, row *types.ChecklistCategory) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type checklistCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChecklistCategoryRepo(db *gorm.DB, baseLog *logger.Logger) ChecklistCategoryRepo {
	return &checklistCategoryRepo{db: db, log: baseLog.With("repo", "ChecklistCategoryRepo")}
}

func (r *checklistCategoryRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.ChecklistCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ChecklistCategory
	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("title ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *checklistCategoryRepo) GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*types.ChecklistCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ChecklistCategory
	err := transaction.WithContext(ctx).
		Where("title = ?", title).
		First(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// Upsert writes the row by title, overwriting display fields if it exists.
// The lookup goes through the title alone; any ID the caller set on row only
// applies when a new row is created.
func (r *checklistCategoryRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.ChecklistCategory) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	existing, err := r.GetByTitle(ctx, transaction, row.Title)
	if err != nil {
		return err
	}
	if existing == nil {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		return transaction.WithContext(ctx).Create(row).Error
	}

	if err := transaction.WithContext(ctx).
		Model(&types.ChecklistCategory{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"icon_name": row.IconName,
			"icon_bg":   row.IconBg,
			"is_active": row.IsActive,
		}).Error; err != nil {
		return err
	}

	existing.IconName = row.IconName
	existing.IconBg = row.IconBg
	existing.IsActive = row.IsActive
	*row = *existing
	return nil
}

// Ensure creates the row only if no row with the same title exists. Used by
// seeding so re-runs leave existing categories untouched; on a hit, row is
// overwritten with the stored state.
func (r *checklistCategoryRepo) Ensure(ctx context.Context, tx *gorm.DB, row *types.ChecklistCategory) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	existing, err := r.GetByTitle(ctx, transaction, row.Title)
	if err != nil {
		return err
	}
	if existing != nil {
		*row = *existing
		return nil
	}

	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(row).Error
}

func (r *checklistCategoryRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.ChecklistCategory{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
