package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

var internalErrorResponse = dto.ErrorResponse{
	Code:    errs.ErrorCode(errs.ErrInternalServer),
	Message: "Internal server error",
}

// ErrorHandler turns panics and unanswered handler errors into the standard 500 body.
// A response that has already started is never rewritten.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      fmt.Sprint(recovered),
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": GetRequestID(c),
				})
				abortInternal(c)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		logger.Error("Request ended with an unanswered error", map[string]any{
			"error":      c.Errors.String(),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": GetRequestID(c),
		})
		abortInternal(c)
	}
}

func abortInternal(c *gin.Context) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse)
}
