package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/services"
)

type Services struct {
	Auth              services.AuthService
	Cluster           services.ClusterService
	Category          services.CategoryService
	ChecklistTemplate services.ChecklistTemplateService
	Completion        services.CompletionService
	LoanRule          services.LoanRuleService
	Seed              services.SeedService
	Evaluators        *services.EvaluatorSet
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	authService := services.NewAuthService(db, log, reposet.AdminUser, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	clusterService := services.NewClusterService(db, log, reposet.Cluster)
	categoryService := services.NewCategoryService(db, log, reposet.ChecklistCategory)
	templateService := services.NewChecklistTemplateService(db, log, reposet.ChecklistTemplate)
	completionService := services.NewCompletionService(db, log, reposet.ModuleCompletion, clients.CompletionCache)
	seedService := services.NewSeedService(db, log, reposet.ChecklistCategory, reposet.ChecklistTemplate)

	evaluators := services.NewEvaluatorSet(log)
	if err := evaluators.Register(services.NewLoanCompletionEvaluator(log, reposet.LoanRule, completionService)); err != nil {
		return Services{}, fmt.Errorf("register loan completion evaluator: %w", err)
	}

	loanRuleService := services.NewLoanRuleService(db, log, reposet.LoanRule, reposet.Cluster, evaluators)

	return Services{
		Auth:              authService,
		Cluster:           clusterService,
		Category:          categoryService,
		ChecklistTemplate: templateService,
		Completion:        completionService,
		LoanRule:          loanRuleService,
		Seed:              seedService,
		Evaluators:        evaluators,
	}, nil
}
