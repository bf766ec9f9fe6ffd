package middleware

import (
	"net/http"

	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator installs the domain validators on Gin's binding engine
func SetupValidator() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return dto.RegisterValidators(v)
	}
	return nil
}

// HandleValidationError writes a 400 with per-field details
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		GetRequestID(c),
		dto.TranslateValidationErrors(err),
	))
}
