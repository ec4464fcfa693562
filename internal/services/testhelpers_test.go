package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/repos"
	"github.com/veloraops/backoffice-backend/internal/types"
)

var testDBCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared&_busy_timeout=5000", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&types.AdminUser{},
		&types.Cluster{},
		&types.ChecklistCategory{},
		&types.ChecklistTemplate{},
		&types.ModuleCompletion{},
		&types.LoanRule{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// testEnv wires real repos and services over an in-memory database, the same
// graph the app builds, minus redis and http.
type testEnv struct {
	db         *gorm.DB
	repos      struct {
		cluster  repos.ClusterRepo
		category repos.ChecklistCategoryRepo
		template repos.ChecklistTemplateRepo
		registry repos.ModuleCompletionRepo
		loan     repos.LoanRuleRepo
	}
	completion CompletionService
	loan       LoanRuleService
	evaluators *EvaluatorSet
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{db: newTestDB(t)}
	log := newTestLogger()

	env.repos.cluster = repos.NewClusterRepo(env.db, log)
	env.repos.category = repos.NewChecklistCategoryRepo(env.db, log)
	env.repos.template = repos.NewChecklistTemplateRepo(env.db, log)
	env.repos.registry = repos.NewModuleCompletionRepo(env.db, log)
	env.repos.loan = repos.NewLoanRuleRepo(env.db, log)

	env.completion = NewCompletionService(env.db, log, env.repos.registry, nil)
	env.evaluators = NewEvaluatorSet(log)
	if err := env.evaluators.Register(NewLoanCompletionEvaluator(log, env.repos.loan, env.completion)); err != nil {
		t.Fatalf("register loan evaluator: %v", err)
	}
	env.loan = NewLoanRuleService(env.db, log, env.repos.loan, env.repos.cluster, env.evaluators)
	return env
}
