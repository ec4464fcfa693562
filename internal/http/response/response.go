package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veloraops/backoffice-backend/internal/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondError maps the service error taxonomy to HTTP statuses:
// validation and duplicate-name errors to 400, not-found to 404, anything
// else to 500.
func RespondError(c *gin.Context, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	status, code := apierr.StatusOf(err)
	c.JSON(status, APIError{Message: msg, Code: code})
}
