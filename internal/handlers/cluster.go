package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/http/response"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/services"
)

type ClusterHandler struct {
	log            *logger.Logger
	clusterService services.ClusterService
}

func NewClusterHandler(baseLog *logger.Logger, clusterService services.ClusterService) *ClusterHandler {
	return &ClusterHandler{
		log:            baseLog.With("handler", "ClusterHandler"),
		clusterService: clusterService,
	}
}

// GET /api/clusters
func (h *ClusterHandler) List(c *gin.Context) {
	clusters, err := h.clusterService.ListAll(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, clusters)
}

// POST /api/clusters
func (h *ClusterHandler) Create(c *gin.Context) {
	var in services.ClusterCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	cluster, err := h.clusterService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, cluster)
}
