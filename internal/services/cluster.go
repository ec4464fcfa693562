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

type ClusterCreate struct {
	Name     string `json:"name"`
	District string `json:"district"`
	State    string `json:"state"`
}

type ClusterService interface {
	Create(ctx context.Context, in ClusterCreate) (*types.Cluster, error)
	ListAll(ctx context.Context) ([]*types.Cluster, error)
}

type clusterService struct {
	db          *gorm.DB
	log         *logger.Logger
	clusterRepo repos.ClusterRepo
}

func NewClusterService(
	db *gorm.DB,
	baseLog *logger.Logger,
	clusterRepo repos.ClusterRepo,
) ClusterService {
	return &clusterService{
		db:          db,
		log:         baseLog.With("service", "ClusterService"),
		clusterRepo: clusterRepo,
	}
}

func (s *clusterService) Create(ctx context.Context, in ClusterCreate) (*types.Cluster, error) {
	if in.Name == "" {
		return nil, apierr.Validation("cluster name is required")
	}

	exists, err := s.clusterRepo.NameExists(ctx, nil, in.Name)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if exists {
		return nil, apierr.Duplicate("cluster %q already exists", in.Name)
	}

	row := &types.Cluster{
		ID:       uuid.New(),
		Name:     in.Name,
		District: in.District,
		State:    in.State,
		IsActive: true,
	}
	if err := s.clusterRepo.Create(ctx, nil, row); err != nil {
		s.log.Error("Create: cluster write failed", "error", err, "name", in.Name)
		return nil, apierr.Persistence(err)
	}
	return row, nil
}

func (s *clusterService) ListAll(ctx context.Context) ([]*types.Cluster, error) {
	rows, err := s.clusterRepo.ListAll(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return rows, nil
}
