package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type CategoryUpsert struct {
	Title    string `json:"title"`
	IconName string `json:"icon_name"`
	IconBg   string `json:"icon_bg"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// CategoryService manages the fixed vocabulary of top-level setting
// categories. Upsert is keyed by title and idempotent; categories are
// soft-deactivated via IsActive, never hard-deleted.
type CategoryService interface {
	ListActive(ctx context.Context) ([]*types.ChecklistCategory, error)
	Upsert(ctx context.Context, in CategoryUpsert) (*types.ChecklistCategory, error)
}

type categoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.ChecklistCategoryRepo
}

func NewCategoryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	categoryRepo repos.ChecklistCategoryRepo,
) CategoryService {
	return &categoryService{
		db:           db,
		log:          baseLog.With("service", "CategoryService"),
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) ListActive(ctx context.Context) ([]*types.ChecklistCategory, error) {
	rows, err := s.categoryRepo.ListActive(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return rows, nil
}

func (s *categoryService) Upsert(ctx context.Context, in CategoryUpsert) (*types.ChecklistCategory, error) {
	if in.Title == "" {
		return nil, apierr.Validation("category title is required")
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	row := &types.ChecklistCategory{
		ID:       uuid.New(),
		Title:    in.Title,
		IconName: in.IconName,
		IconBg:   in.IconBg,
		IsActive: isActive,
	}
	if err := s.categoryRepo.Upsert(ctx, nil, row); err != nil {
		s.log.Error("Upsert: category write failed", "error", err, "title", in.Title)
		return nil, apierr.Persistence(err)
	}
	return row, nil
}
