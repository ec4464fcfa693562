package app

import (
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
)

type Repos struct {
	AdminUser         repos.AdminUserRepo
	Cluster           repos.ClusterRepo
	ChecklistCategory repos.ChecklistCategoryRepo
	ChecklistTemplate repos.ChecklistTemplateRepo
	ModuleCompletion  repos.ModuleCompletionRepo
	LoanRule          repos.LoanRuleRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		AdminUser:         repos.NewAdminUserRepo(db, log),
		Cluster:           repos.NewClusterRepo(db, log),
		ChecklistCategory: repos.NewChecklistCategoryRepo(db, log),
		ChecklistTemplate: repos.NewChecklistTemplateRepo(db, log),
		ModuleCompletion:  repos.NewModuleCompletionRepo(db, log),
		LoanRule:          repos.NewLoanRuleRepo(db, log),
	}
}
