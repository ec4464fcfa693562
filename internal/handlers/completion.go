package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/http/response"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/services"
)

type CompletionHandler struct {
	log               *logger.Logger
	completionService services.CompletionService
}

func NewCompletionHandler(baseLog *logger.Logger, completionService services.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		log:               baseLog.With("handler", "CompletionHandler"),
		completionService: completionService,
	}
}

// GET /api/checklists/completion?clusterId=
// Without clusterId, returns every registry row.
func (h *CompletionHandler) ListCompletion(c *gin.Context) {
	raw := c.Query("clusterId")
	if raw == "" {
		rows, err := h.completionService.ListAll(c.Request.Context())
		if err != nil {
			response.RespondError(c, err)
			return
		}
		response.RespondOK(c, rows)
		return
	}

	clusterID, err := uuid.Parse(raw)
	if err != nil {
		response.RespondError(c, apierr.Validation("invalid cluster id"))
		return
	}

	rows, err := h.completionService.GetForCluster(c.Request.Context(), clusterID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /api/checklists/completion/update
// Manual-correction escape hatch. Normal completion state is derived by the
// module evaluators on every domain mutation; write here only to repair a
// stuck row.
func (h *CompletionHandler) UpdateCompletion(c *gin.Context) {
	var in services.CompletionUpsert
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	row, err := h.completionService.Upsert(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, row)
}
