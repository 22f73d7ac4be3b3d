package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/cadastro/internal/domain"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// validationErrorResponse lists field errors in form order.
func validationErrorResponse(c *gin.Context, status int, errs map[string]string) {
	out := make([]ValidationError, 0, len(errs))
	for _, field := range domain.FieldOrder {
		if msg, ok := errs[field]; ok {
			out = append(out, ValidationError{field, msg})
		}
	}

	c.AbortWithStatusJSON(status, ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       out,
	})
}
