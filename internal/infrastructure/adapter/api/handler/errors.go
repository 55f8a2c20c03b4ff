package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Client facing messages
const (
	msgValidationFailed   = "Validation failed"
	msgInvalidBody        = "Invalid request body"
	msgInvalidMonth       = "Month must be in YYYY-MM format"
	msgInvalidCredentials = "Invalid credentials"
	msgNotAuthorized      = "Not authorized"
	msgExpenseNotFound    = "Expense not found"
	msgUserNotFound       = "User not found"
	msgUserExists         = "User already exists with that email"
	msgInternalError      = "Internal server error"
)

// requiredMessages are returned for body fields missing a binding:"required" value
var requiredMessages = map[string]string{
	"name":     "Name is required",
	"email":    "Please include a valid email",
	"password": "Password is required",
	"title":    "Title is required",
	"amount":   "Amount is required",
	"category": "Category is required",
}

// respondError maps a domain error to its HTTP status and body.
// Only unexpected errors are logged; their detail stays server side.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	var validationErr *errs.ValidationError
	code := errs.ErrorCode(err)

	switch {
	case errors.As(err, &validationErr):
		fields := make([]dto.FieldError, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message})
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: code, Message: msgValidationFailed, Errors: fields})

	case errors.Is(err, errs.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    code,
			Message: msgValidationFailed,
			Errors:  []dto.FieldError{{Field: "month", Message: msgInvalidMonth}},
		})

	case errs.IsValidationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: code, Message: msgValidationFailed})

	case errors.Is(err, errs.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: code, Message: msgInvalidCredentials})

	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Code: code, Message: msgNotAuthorized})

	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Code: code, Message: msgNotAuthorized})

	case errors.Is(err, errs.ErrExpenseNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: code, Message: msgExpenseNotFound})

	case errors.Is(err, errs.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: code, Message: msgUserNotFound})

	case errors.Is(err, errs.ErrDuplicateUser):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Code: code, Message: msgUserExists})

	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    errs.CodeInternalServer,
			Message: msgInternalError,
		})
	}
}

// respondBadBody answers a body that is not valid JSON for the endpoint
// or that misses fields required by its binding tags
func respondBadBody(c *gin.Context, err error) {
	_ = c.Error(err)

	var bindingErrs validator.ValidationErrors
	if errors.As(err, &bindingErrs) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.CodeValidation,
			Message: msgValidationFailed,
			Errors:  bindingFieldErrors(bindingErrs),
		})
		return
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.CodeValidation,
		Message: msgInvalidBody,
	})
}

func bindingFieldErrors(bindingErrs validator.ValidationErrors) []dto.FieldError {
	fields := make([]dto.FieldError, 0, len(bindingErrs))
	for _, fe := range bindingErrs {
		name := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		message, ok := requiredMessages[name]
		if !ok || fe.Tag() != "required" {
			message = "Invalid value"
		}
		fields = append(fields, dto.FieldError{Field: name, Message: message})
	}
	return fields
}

// requireUser reads the admitted user; a missing one means the route lacks the auth gate
func requireUser(c *gin.Context) (*entity.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    errs.CodeUnauthorized,
			Message: msgNotAuthorized,
		})
		return nil, false
	}
	return user, true
}
