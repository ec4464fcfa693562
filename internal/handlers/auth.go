package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/veloraops/backoffice-backend/internal/apierr"
	"github.com/veloraops/backoffice-backend/internal/http/response"
	"github.com/veloraops/backoffice-backend/internal/logger"
	"github.com/veloraops/backoffice-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(baseLog *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         baseLog.With("handler", "AuthHandler"),
		authService: authService,
	}
}

// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var in services.AdminRegister
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondCreated(c, user)
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, tokens)
}

// POST /refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var in struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, apierr.Validation("invalid request body: %v", err))
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, tokens)
}
