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

type LoanRuleCreate struct {
	ClusterID       uuid.UUID `json:"cluster_id"`
	Name            string    `json:"name"`
	InterestRate    float64   `json:"interest_rate"`
	MaxTenureMonths int       `json:"max_tenure_months"`
	MinAmount       float64   `json:"min_amount"`
	MaxAmount       float64   `json:"max_amount"`
	Status          string    `json:"status"`
}

type LoanRuleUpdate struct {
	Name            *string  `json:"name,omitempty"`
	InterestRate    *float64 `json:"interest_rate,omitempty"`
	MaxTenureMonths *int     `json:"max_tenure_months,omitempty"`
	MinAmount       *float64 `json:"min_amount,omitempty"`
	MaxAmount       *float64 `json:"max_amount,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

// LoanRuleService is the fully-realized producer of completion facts: every
// mutation synchronously recomputes the Loan Setting registry row for the
// affected cluster. A failed recompute is logged and left for the next
// mutation or a manual Recompute call; the domain write has already committed
// and must not be rolled back for it.
type LoanRuleService interface {
	Create(ctx context.Context, in LoanRuleCreate) (*types.LoanRule, error)
	Update(ctx context.Context, id uuid.UUID, patch LoanRuleUpdate) (*types.LoanRule, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForCluster(ctx context.Context, clusterID uuid.UUID) ([]*types.LoanRule, error)
	Recompute(ctx context.Context, clusterID uuid.UUID) (*types.ModuleCompletion, error)
}

type loanRuleService struct {
	db           *gorm.DB
	log          *logger.Logger
	loanRuleRepo repos.LoanRuleRepo
	clusterRepo  repos.ClusterRepo
	evaluators   *EvaluatorSet
}

func NewLoanRuleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	loanRuleRepo repos.LoanRuleRepo,
	clusterRepo repos.ClusterRepo,
	evaluators *EvaluatorSet,
) LoanRuleService {
	return &loanRuleService{
		db:           db,
		log:          baseLog.With("service", "LoanRuleService"),
		loanRuleRepo: loanRuleRepo,
		clusterRepo:  clusterRepo,
		evaluators:   evaluators,
	}
}

func validLoanRuleStatus(status string) bool {
	return status == types.LoanRuleStatusActive || status == types.LoanRuleStatusInactive
}

func (s *loanRuleService) Create(ctx context.Context, in LoanRuleCreate) (*types.LoanRule, error) {
	if in.ClusterID == uuid.Nil {
		return nil, apierr.Validation("cluster id is required")
	}
	if in.Name == "" {
		return nil, apierr.Validation("loan rule name is required")
	}
	if in.Status == "" {
		in.Status = types.LoanRuleStatusActive
	}
	if !validLoanRuleStatus(in.Status) {
		return nil, apierr.Validation("invalid loan rule status %q", in.Status)
	}
	if in.InterestRate < 0 {
		return nil, apierr.Validation("interest rate cannot be negative")
	}
	if in.MaxAmount > 0 && in.MinAmount > in.MaxAmount {
		return nil, apierr.Validation("min amount exceeds max amount")
	}

	cluster, err := s.clusterRepo.GetByID(ctx, nil, in.ClusterID)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if cluster == nil {
		return nil, apierr.NotFound("cluster %s not found", in.ClusterID)
	}

	row := &types.LoanRule{
		ID:              uuid.New(),
		ClusterID:       in.ClusterID,
		Name:            in.Name,
		InterestRate:    in.InterestRate,
		MaxTenureMonths: in.MaxTenureMonths,
		MinAmount:       in.MinAmount,
		MaxAmount:       in.MaxAmount,
		Status:          in.Status,
	}
	if err := s.loanRuleRepo.Create(ctx, nil, row); err != nil {
		s.log.Error("Create: loan rule write failed", "error", err, "cluster_id", in.ClusterID)
		return nil, apierr.Persistence(err)
	}

	s.recomputeAfterMutation(ctx, row.ClusterID, "create")
	return row, nil
}

func (s *loanRuleService) Update(ctx context.Context, id uuid.UUID, patch LoanRuleUpdate) (*types.LoanRule, error) {
	if id == uuid.Nil {
		return nil, apierr.Validation("loan rule id is required")
	}

	row, err := s.loanRuleRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if row == nil {
		return nil, apierr.NotFound("loan rule %s not found", id)
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, apierr.Validation("loan rule name cannot be empty")
		}
		row.Name = *patch.Name
	}
	if patch.InterestRate != nil {
		if *patch.InterestRate < 0 {
			return nil, apierr.Validation("interest rate cannot be negative")
		}
		row.InterestRate = *patch.InterestRate
	}
	if patch.MaxTenureMonths != nil {
		row.MaxTenureMonths = *patch.MaxTenureMonths
	}
	if patch.MinAmount != nil {
		row.MinAmount = *patch.MinAmount
	}
	if patch.MaxAmount != nil {
		row.MaxAmount = *patch.MaxAmount
	}
	if patch.Status != nil {
		if !validLoanRuleStatus(*patch.Status) {
			return nil, apierr.Validation("invalid loan rule status %q", *patch.Status)
		}
		row.Status = *patch.Status
	}

	if err := s.loanRuleRepo.Update(ctx, nil, row); err != nil {
		s.log.Error("Update: loan rule write failed", "error", err, "loan_rule_id", id)
		return nil, apierr.Persistence(err)
	}

	s.recomputeAfterMutation(ctx, row.ClusterID, "update")
	return row, nil
}

func (s *loanRuleService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apierr.Validation("loan rule id is required")
	}

	row, err := s.loanRuleRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if row == nil {
		return apierr.NotFound("loan rule %s not found", id)
	}

	if err := s.loanRuleRepo.SoftDeleteByID(ctx, nil, id); err != nil {
		s.log.Error("Delete: loan rule delete failed", "error", err, "loan_rule_id", id)
		return apierr.Persistence(err)
	}

	// The cluster is re-evaluated against what remains, so deleting the last
	// active rule flips its row back to completed=false.
	s.recomputeAfterMutation(ctx, row.ClusterID, "delete")
	return nil
}

func (s *loanRuleService) ListForCluster(ctx context.Context, clusterID uuid.UUID) ([]*types.LoanRule, error) {
	if clusterID == uuid.Nil {
		return nil, apierr.Validation("cluster id is required")
	}

	rows, err := s.loanRuleRepo.GetByClusterID(ctx, nil, clusterID)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return rows, nil
}

// Recompute is the manual repair entry point for a stuck registry row.
func (s *loanRuleService) Recompute(ctx context.Context, clusterID uuid.UUID) (*types.ModuleCompletion, error) {
	if clusterID == uuid.Nil {
		return nil, apierr.Validation("cluster id is required")
	}
	return s.evaluators.Recompute(ctx, types.ModuleLoanSetting, clusterID)
}

func (s *loanRuleService) recomputeAfterMutation(ctx context.Context, clusterID uuid.UUID, op string) {
	if _, err := s.evaluators.Recompute(ctx, types.ModuleLoanSetting, clusterID); err != nil {
		s.log.Warn("Loan completion recompute failed after mutation",
			"error", err, "op", op, "cluster_id", clusterID)
	}
}
