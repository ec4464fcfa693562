package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/types"
)

type ChecklistTemplateCreate struct {
	Name             string                `json:"name"`
	Items            []types.ChecklistItem `json:"items"`
	Category         string                `json:"category"`
	IconName         string                `json:"icon_name"`
	IconBg           string                `json:"icon_bg"`
	Status           string                `json:"status"`
	CompletionStatus string                `json:"completion_status"`
}

type ChecklistTemplateUpdate struct {
	Name             *string                `json:"name,omitempty"`
	Items            *[]types.ChecklistItem `json:"items,omitempty"`
	Category         *string                `json:"category,omitempty"`
	IconName         *string                `json:"icon_name,omitempty"`
	IconBg           *string                `json:"icon_bg,omitempty"`
	Status           *string                `json:"status,omitempty"`
	CompletionStatus *string                `json:"completion_status,omitempty"`
}

// ChecklistTemplateService manages the named checklist templates the UI
// scaffolds from. Template completion flags are informational and are never
// synchronized with the completion registry.
type ChecklistTemplateService interface {
	Create(ctx context.Context, in ChecklistTemplateCreate) (*types.ChecklistTemplate, error)
	Update(ctx context.Context, id uuid.UUID, patch ChecklistTemplateUpdate) (*types.ChecklistTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*types.ChecklistTemplate, error)
}

type checklistTemplateService struct {
	db           *gorm.DB
	log          *logger.Logger
	templateRepo repos.ChecklistTemplateRepo
}

func NewChecklistTemplateService(
	db *gorm.DB,
	baseLog *logger.Logger,
	templateRepo repos.ChecklistTemplateRepo,
) ChecklistTemplateService {
	return &checklistTemplateService{
		db:           db,
		log:          baseLog.With("service", "ChecklistTemplateService"),
		templateRepo: templateRepo,
	}
}

// normalizeItems validates and orders template items. Insertion order of the
// payload carries no meaning; the items' own Order field is authoritative.
func normalizeItems(items []types.ChecklistItem) ([]types.ChecklistItem, error) {
	for _, item := range items {
		if item.ItemName == "" {
			return nil, apierr.Validation("checklist item name is required")
		}
		if item.Order < 0 {
			return nil, apierr.Validation("checklist item order cannot be negative")
		}
	}
	out := make([]types.ChecklistItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func validTemplateStatus(status string) bool {
	return status == types.TemplateStatusActive || status == types.TemplateStatusInactive
}

func validCompletionStatus(status string) bool {
	return status == types.TemplateCompletionCompleted || status == types.TemplateCompletionPending
}

func (s *checklistTemplateService) Create(ctx context.Context, in ChecklistTemplateCreate) (*types.ChecklistTemplate, error) {
	if in.Name == "" {
		return nil, apierr.Validation("template name is required")
	}
	if in.Status == "" {
		in.Status = types.TemplateStatusActive
	}
	if !validTemplateStatus(in.Status) {
		return nil, apierr.Validation("invalid template status %q", in.Status)
	}
	if in.CompletionStatus == "" {
		in.CompletionStatus = types.TemplateCompletionPending
	}
	if !validCompletionStatus(in.CompletionStatus) {
		return nil, apierr.Validation("invalid completion status %q", in.CompletionStatus)
	}

	items, err := normalizeItems(in.Items)
	if err != nil {
		return nil, err
	}

	exists, err := s.templateRepo.NameExists(ctx, nil, in.Name)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if exists {
		return nil, apierr.Duplicate("template %q already exists", in.Name)
	}

	row := &types.ChecklistTemplate{
		ID:               uuid.New(),
		Name:             in.Name,
		Items:            items,
		Status:           in.Status,
		CompletionStatus: in.CompletionStatus,
		Category:         in.Category,
		IconName:         in.IconName,
		IconBg:           in.IconBg,
	}
	if err := s.templateRepo.Create(ctx, nil, row); err != nil {
		s.log.Error("Create: template write failed", "error", err, "name", in.Name)
		return nil, apierr.Persistence(err)
	}
	return row, nil
}

func (s *checklistTemplateService) Update(ctx context.Context, id uuid.UUID, patch ChecklistTemplateUpdate) (*types.ChecklistTemplate, error) {
	if id == uuid.Nil {
		return nil, apierr.Validation("template id is required")
	}

	row, err := s.templateRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if row == nil {
		return nil, apierr.NotFound("template %s not found", id)
	}

	if patch.Name != nil && *patch.Name != row.Name {
		if *patch.Name == "" {
			return nil, apierr.Validation("template name cannot be empty")
		}
		exists, err := s.templateRepo.NameExists(ctx, nil, *patch.Name)
		if err != nil {
			return nil, apierr.Persistence(err)
		}
		if exists {
			return nil, apierr.Duplicate("template %q already exists", *patch.Name)
		}
		row.Name = *patch.Name
	}
	if patch.Items != nil {
		items, err := normalizeItems(*patch.Items)
		if err != nil {
			return nil, err
		}
		row.Items = items
	}
	if patch.Category != nil {
		row.Category = *patch.Category
	}
	if patch.IconName != nil {
		row.IconName = *patch.IconName
	}
	if patch.IconBg != nil {
		row.IconBg = *patch.IconBg
	}
	if patch.Status != nil {
		if !validTemplateStatus(*patch.Status) {
			return nil, apierr.Validation("invalid template status %q", *patch.Status)
		}
		row.Status = *patch.Status
	}
	if patch.CompletionStatus != nil {
		if !validCompletionStatus(*patch.CompletionStatus) {
			return nil, apierr.Validation("invalid completion status %q", *patch.CompletionStatus)
		}
		row.CompletionStatus = *patch.CompletionStatus
	}

	if err := s.templateRepo.Update(ctx, nil, row); err != nil {
		s.log.Error("Update: template write failed", "error", err, "template_id", id)
		return nil, apierr.Persistence(err)
	}
	return row, nil
}

func (s *checklistTemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apierr.Validation("template id is required")
	}

	row, err := s.templateRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if row == nil {
		return apierr.NotFound("template %s not found", id)
	}

	if err := s.templateRepo.Delete(ctx, nil, id); err != nil {
		s.log.Error("Delete: template delete failed", "error", err, "template_id", id)
		return apierr.Persistence(err)
	}
	return nil
}

func (s *checklistTemplateService) ListAll(ctx context.Context) ([]*types.ChecklistTemplate, error) {
	rows, err := s.templateRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return rows, nil
}
