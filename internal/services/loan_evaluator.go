package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/types"
)

const (
	loanCompletionCategory = "Loan"
	loanCompletionIcon     = "loan"
)

// loanCompletionEvaluator derives the Loan Setting registry row: a cluster is
// complete once it has at least one active loan rule. Binary progress only;
// richer evaluators may report intermediate percentages.
type loanCompletionEvaluator struct {
	log          *logger.Logger
	loanRuleRepo repos.LoanRuleRepo
	completion   CompletionService
}

func NewLoanCompletionEvaluator(
	baseLog *logger.Logger,
	loanRuleRepo repos.LoanRuleRepo,
	completion CompletionService,
) CompletionEvaluator {
	return &loanCompletionEvaluator{
		log:          baseLog.With("evaluator", "LoanCompletionEvaluator"),
		loanRuleRepo: loanRuleRepo,
		completion:   completion,
	}
}

func (e *loanCompletionEvaluator) ModuleName() types.ModuleName {
	return types.ModuleLoanSetting
}

func (e *loanCompletionEvaluator) Recompute(ctx context.Context, clusterID uuid.UUID) (*types.ModuleCompletion, error) {
	if clusterID == uuid.Nil {
		return nil, apierr.Validation("cluster id is required")
	}

	active, err := e.loanRuleRepo.GetActiveByClusterID(ctx, nil, clusterID)
	if err != nil {
		return nil, apierr.Persistence(err)
	}

	completed := len(active) > 0
	progress := 0
	if completed {
		progress = 100
	}

	return e.completion.Upsert(ctx, CompletionUpsert{
		ModuleName:      types.ModuleLoanSetting,
		ClusterID:       clusterID,
		Completed:       completed,
		ProgressPercent: progress,
		Category:        loanCompletionCategory,
		IconName:        loanCompletionIcon,
	})
}
