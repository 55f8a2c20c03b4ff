package middleware

import (
	"net/http"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// RequireAuth admits requests whose bearer token resolves to an existing user.
// Every rejection gets the same 401 body.
func RequireAuth(auth usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome, err := auth.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			logger.Error("Auth gate failed to resolve user", map[string]any{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrInternalServer),
				Message: "Internal server error",
			})
			return
		}

		if !outcome.IsAdmitted() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    errs.CodeUnauthorized,
				Message: "Not authorized",
			})
			return
		}

		c.Set(currentUserKey, outcome.Identity())
		c.Next()
	}
}

// CurrentUser returns the user admitted by RequireAuth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}
