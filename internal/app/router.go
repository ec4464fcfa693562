package app

import (
	"github.com/gin-gonic/gin"

	"github.com/veloraops/backoffice-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:       cfg.ServiceName,
		AuthHandler:       handlerset.Auth,
		AuthMiddleware:    mw.Auth,
		ChecklistHandler:  handlerset.Checklist,
		CompletionHandler: handlerset.Completion,
		LoanRuleHandler:   handlerset.LoanRule,
		ClusterHandler:    handlerset.Cluster,
	})
}
