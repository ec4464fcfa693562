package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	redisclient "github.com/veloraops/backoffice-backend/internal/clients/redis"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/types"
)

// CompletionUpsert carries one registry write. ProgressPercent outside [0,100]
// is rejected outright rather than clamped, so a broken evaluator surfaces
// instead of silently writing a plausible-looking row.
type CompletionUpsert struct {
	ModuleName      types.ModuleName `json:"module_name"`
	ClusterID       uuid.UUID        `json:"cluster_id"`
	Completed       bool             `json:"completed"`
	ProgressPercent int              `json:"progress_percent"`
	Category        string           `json:"category"`
	IconName        string           `json:"icon_name"`
}

// CompletionService owns the module completion registry: the single source of
// truth dashboards read for per-cluster setup state. Upsert is the only write
// primitive; completion is derived by evaluators, never asserted, except via
// the manual-correction endpoint that also lands here.
type CompletionService interface {
	GetForCluster(ctx context.Context, clusterID uuid.UUID) ([]*types.ModuleCompletion, error)
	ListAll(ctx context.Context) ([]*types.ModuleCompletion, error)
	Upsert(ctx context.Context, in CompletionUpsert) (*types.ModuleCompletion, error)
}

type completionService struct {
	db             *gorm.DB
	log            *logger.Logger
	completionRepo repos.ModuleCompletionRepo
	cache          redisclient.CompletionCache
}

func NewCompletionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	completionRepo repos.ModuleCompletionRepo,
	cache redisclient.CompletionCache,
) CompletionService {
	return &completionService{
		db:             db,
		log:            baseLog.With("service", "CompletionService"),
		completionRepo: completionRepo,
		cache:          cache,
	}
}

func (s *completionService) GetForCluster(ctx context.Context, clusterID uuid.UUID) ([]*types.ModuleCompletion, error) {
	if clusterID == uuid.Nil {
		return nil, apierr.Validation("cluster id is required")
	}

	if s.cache != nil {
		if rows, ok := s.cache.Get(ctx, clusterID); ok {
			return rows, nil
		}
	}

	rows, err := s.completionRepo.GetByClusterID(ctx, nil, clusterID)
	if err != nil {
		s.log.Error("GetForCluster: registry read failed", "error", err, "cluster_id", clusterID)
		return nil, apierr.Persistence(err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, clusterID, rows)
	}
	return rows, nil
}

func (s *completionService) ListAll(ctx context.Context) ([]*types.ModuleCompletion, error) {
	rows, err := s.completionRepo.ListAll(ctx, nil)
	if err != nil {
		s.log.Error("ListAll: registry read failed", "error", err)
		return nil, apierr.Persistence(err)
	}
	return rows, nil
}

func (s *completionService) Upsert(ctx context.Context, in CompletionUpsert) (*types.ModuleCompletion, error) {
	if !in.ModuleName.Valid() {
		return nil, apierr.Validation("unknown module name %q", in.ModuleName)
	}
	if in.ClusterID == uuid.Nil {
		return nil, apierr.Validation("cluster id is required")
	}
	if in.ProgressPercent < 0 || in.ProgressPercent > 100 {
		return nil, apierr.Validation("progress percent %d out of range [0,100]", in.ProgressPercent)
	}

	row := &types.ModuleCompletion{
		ID:              uuid.New(),
		ModuleName:      in.ModuleName,
		ClusterID:       in.ClusterID,
		Completed:       in.Completed,
		ProgressPercent: in.ProgressPercent,
		Category:        in.Category,
		IconName:        in.IconName,
	}
	if err := s.completionRepo.Upsert(ctx, nil, row); err != nil {
		s.log.Error("Upsert: registry write failed", "error", err,
			"module_name", in.ModuleName, "cluster_id", in.ClusterID)
		return nil, apierr.Persistence(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, in.ClusterID)
	}
	return row, nil
}
