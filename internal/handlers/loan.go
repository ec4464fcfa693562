package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/http/response"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/services"
)

type LoanRuleHandler struct {
	log             *logger.Logger
	loanRuleService services.LoanRuleService
}

func NewLoanRuleHandler(baseLog *logger.Logger, loanRuleService services.LoanRuleService) *LoanRuleHandler {
	return &LoanRuleHandler{
		log:             baseLog.With("handler", "LoanRuleHandler"),
		loanRuleService: loanRuleService,
	}
}

func parseClusterID(c *gin.Context) (uuid.UUID, error) {
	raw := c.Query("clusterId")
	if raw == "" {
		return uuid.Nil, apierr.Validation("clusterId query parameter is required")
	}
	clusterID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierr.Validation("invalid cluster id")
	}
	return clusterID, nil
}

// GET /api/loan-rules?clusterId=
func (h *LoanRuleHandler) ListForCluster(c *gin.Context) {
	clusterID, err := parseClusterID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	rules, err := h.loanRuleService.ListForCluster(c.Request.Context(), clusterID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, rules)
}

// POST /api/loan-rules
func (h *LoanRuleHandler) Create(c *gin.Context) {
	var in services.LoanRuleCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	rule, err := h.loanRuleService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, rule)
}

// PUT /api/loan-rules/:id
func (h *LoanRuleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apierr.Validation("invalid loan rule id"))
		return
	}

	var patch services.LoanRuleUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	rule, err := h.loanRuleService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, rule)
}

// DELETE /api/loan-rules/:id
func (h *LoanRuleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apierr.Validation("invalid loan rule id"))
		return
	}

	if err := h.loanRuleService.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

// POST /api/loan-rules/recompute?clusterId=
// Manual recompute for a cluster whose registry row is suspected stale.
func (h *LoanRuleHandler) Recompute(c *gin.Context) {
	clusterID, err := parseClusterID(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	row, err := h.loanRuleService.Recompute(c.Request.Context(), clusterID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, row)
}
