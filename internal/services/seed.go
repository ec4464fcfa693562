package services

import (
	"context"
	_ "embed"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/types"
)

//go:embed seed_data.yaml
var seedDataYAML []byte

type seedCategory struct {
	Title    string `yaml:"title"`
	IconName string `yaml:"icon_name"`
	IconBg   string `yaml:"icon_bg"`
}

type seedItem struct {
	ItemName string `yaml:"item_name"`
	Required bool   `yaml:"required"`
	Order    int    `yaml:"order"`
}

type seedTemplate struct {
	Name     string     `yaml:"name"`
	Category string     `yaml:"category"`
	IconName string     `yaml:"icon_name"`
	IconBg   string     `yaml:"icon_bg"`
	Items    []seedItem `yaml:"items"`
}

type seedData struct {
	Categories []seedCategory `yaml:"categories"`
	Templates  []seedTemplate `yaml:"templates"`
}

type SeedResult struct {
	Categories int64 `json:"categories"`
	Templates  int64 `json:"templates"`
}

// SeedService loads the fixed category vocabulary and the sample templates
// shipped with the binary. Rows are created by natural key only if absent, so
// running it any number of times leaves the same set behind.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.ChecklistCategoryRepo
	templateRepo repos.ChecklistTemplateRepo
}

func NewSeedService(
	db *gorm.DB,
	baseLog *logger.Logger,
	categoryRepo repos.ChecklistCategoryRepo,
	templateRepo repos.ChecklistTemplateRepo,
) SeedService {
	return &seedService{
		db:           db,
		log:          baseLog.With("service", "SeedService"),
		categoryRepo: categoryRepo,
		templateRepo: templateRepo,
	}
}

func (s *seedService) Seed(ctx context.Context) (*SeedResult, error) {
	var data seedData
	if err := yaml.Unmarshal(seedDataYAML, &data); err != nil {
		s.log.Error("Seed: embedded seed data unreadable", "error", err)
		return nil, apierr.Persistence(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range data.Categories {
			row := &types.ChecklistCategory{
				ID:       uuid.New(),
				Title:    c.Title,
				IconName: c.IconName,
				IconBg:   c.IconBg,
				IsActive: true,
			}
			if err := s.categoryRepo.Ensure(ctx, tx, row); err != nil {
				return err
			}
		}
		for _, t := range data.Templates {
			items := make([]types.ChecklistItem, 0, len(t.Items))
			for _, item := range t.Items {
				items = append(items, types.ChecklistItem{
					ItemName: item.ItemName,
					Required: item.Required,
					Order:    item.Order,
				})
			}
			row := &types.ChecklistTemplate{
				ID:               uuid.New(),
				Name:             t.Name,
				Items:            items,
				Status:           types.TemplateStatusActive,
				CompletionStatus: types.TemplateCompletionPending,
				Category:         t.Category,
				IconName:         t.IconName,
				IconBg:           t.IconBg,
			}
			if err := s.templateRepo.Ensure(ctx, tx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("Seed: transaction failed", "error", err)
		return nil, apierr.Persistence(err)
	}

	categories, err := s.categoryRepo.Count(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	templates, err := s.templateRepo.Count(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}

	s.log.Info("Seed finished", "categories", categories, "templates", templates)
	return &SeedResult{Categories: categories, Templates: templates}, nil
}
