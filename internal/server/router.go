package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/veloraops/backoffice-backend/internal/handlers"
	"github.com/veloraops/backoffice-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName       string
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	ChecklistHandler  *handlers.ChecklistHandler
	CompletionHandler *handlers.CompletionHandler
	LoanRuleHandler   *handlers.LoanRuleHandler
	ClusterHandler    *handlers.ClusterHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.POST("/refresh", cfg.AuthHandler.Refresh)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	// Checklist templates
	api.GET("/checklists", cfg.ChecklistHandler.ListTemplates)
	api.POST("/checklists", cfg.ChecklistHandler.CreateTemplate)
	api.PUT("/checklists/:id", cfg.ChecklistHandler.UpdateTemplate)
	api.DELETE("/checklists/:id", cfg.ChecklistHandler.DeleteTemplate)

	// Completion registry
	api.GET("/checklists/completion", cfg.CompletionHandler.ListCompletion)
	api.POST("/checklists/completion/update", cfg.CompletionHandler.UpdateCompletion)

	// Categories + seed
	api.GET("/checklists/categories", cfg.ChecklistHandler.ListCategories)
	api.POST("/checklists/categories", cfg.ChecklistHandler.UpsertCategory)
	api.POST("/checklists/seed", cfg.ChecklistHandler.Seed)

	// Loan rules
	api.GET("/loan-rules", cfg.LoanRuleHandler.ListForCluster)
	api.POST("/loan-rules", cfg.LoanRuleHandler.Create)
	api.PUT("/loan-rules/:id", cfg.LoanRuleHandler.Update)
	api.DELETE("/loan-rules/:id", cfg.LoanRuleHandler.Delete)
	api.POST("/loan-rules/recompute", cfg.LoanRuleHandler.Recompute)

	// Clusters
	api.GET("/clusters", cfg.ClusterHandler.List)
	api.POST("/clusters", cfg.ClusterHandler.Create)

	return router
}
