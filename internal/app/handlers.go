package app

import (
	"github.com/veloraops/backoffice-backend/internal/handlers"
	"github.com/veloraops/backoffice-backend/internal/logger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Checklist  *handlers.ChecklistHandler
	Completion *handlers.CompletionHandler
	LoanRule   *handlers.LoanRuleHandler
	Cluster    *handlers.ClusterHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       handlers.NewAuthHandler(log, serviceset.Auth),
		Checklist:  handlers.NewChecklistHandler(log, serviceset.ChecklistTemplate, serviceset.Category, serviceset.Seed),
		Completion: handlers.NewCompletionHandler(log, serviceset.Completion),
		LoanRule:   handlers.NewLoanRuleHandler(log, serviceset.LoanRule),
		Cluster:    handlers.NewClusterHandler(log, serviceset.Cluster),
	}
}
