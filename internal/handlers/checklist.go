package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/http/response"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/services"
)

type ChecklistHandler struct {
	log             *logger.Logger
	templateService services.ChecklistTemplateService
	categoryService services.CategoryService
	seedService     services.SeedService
}

func NewChecklistHandler(
	baseLog *logger.Logger,
	templateService services.ChecklistTemplateService,
	categoryService services.CategoryService,
	seedService services.SeedService,
) *ChecklistHandler {
	return &ChecklistHandler{
		log:             baseLog.With("handler", "ChecklistHandler"),
		templateService: templateService,
		categoryService: categoryService,
		seedService:     seedService,
	}
}

// GET /api/checklists
func (h *ChecklistHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.ListAll(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, templates)
}

// POST /api/checklists
func (h *ChecklistHandler) CreateTemplate(c *gin.Context) {
	var in services.ChecklistTemplateCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	template, err := h.templateService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, template)
}

// PUT /api/checklists/:id
func (h *ChecklistHandler) UpdateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apierr.Validation("invalid template id"))
		return
	}

	var patch services.ChecklistTemplateUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	template, err := h.templateService.Update(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, template)
}

// DELETE /api/checklists/:id
func (h *ChecklistHandler) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, apierr.Validation("invalid template id"))
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}

// GET /api/checklists/categories
func (h *ChecklistHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListActive(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, categories)
}

// POST /api/checklists/categories
func (h *ChecklistHandler) UpsertCategory(c *gin.Context) {
	var in services.CategoryUpsert
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	category, err := h.categoryService.Upsert(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, category)
}

// POST /api/checklists/seed
func (h *ChecklistHandler) Seed(c *gin.Context) {
	result, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, result)
}
