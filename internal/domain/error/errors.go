package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation         = 4000
	CodeInvalidAmount      = 4002
	CodeInvalidDate        = 4003
	CodeInvalidMonth       = 4004
	CodeUnauthorized       = 4010
	CodeInvalidCredentials = 4011
	CodeForbidden          = 4030
	CodeExpenseNotFound    = 4040
	CodeUserNotFound       = 4041
	CodeDuplicateUser      = 4090

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when request fields are missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an expense amount is not a positive two-decimal number
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountOverflow is returned when an amount does not fit DECIMAL(10,2)
	ErrAmountOverflow = errors.New("amount is too large")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD format
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMonth is returned when a month filter is not in YYYY-MM format
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidUserID is returned when the user ID is zero
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUnauthorized is returned when a request carries no usable identity
	ErrUnauthorized = errors.New("not authorized")

	// ErrInvalidToken covers malformed, tampered and expired tokens alike
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned when login email or password do not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the caller does not own the addressed resource
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrExpenseNotFound is returned when the requested expense doesn't exist
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrDuplicateUser is returned when registering an email that is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrMissingSigningKey is returned when the token signing secret is not configured
	ErrMissingSigningKey = errors.New("token signing key is not configured")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrAmountOverflow):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrInvalidMonth):
		return CodeInvalidMonth
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrExpenseNotFound):
		return CodeExpenseNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	default:
		return CodeInternalServer
	}
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field level problems found in one request
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a validation error for the given fields
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add appends a field problem
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field problem was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns the error only when it holds field problems
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Is checks if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"fields":     e.Fields,
		"error_code": CodeValidation,
	}
}

// OwnershipError records a by-id access to an expense owned by someone else
type OwnershipError struct {
	ExpenseID uint64
	OwnerID   uint64
	CallerID  uint64
}

// Error implements the error interface
func (e *OwnershipError) Error() string {
	return fmt.Sprintf("user %d does not own expense %d", e.CallerID, e.ExpenseID)
}

// Is checks if the target error is ErrForbidden
func (e *OwnershipError) Is(target error) bool {
	return target == ErrForbidden
}

// LogFields returns a map of fields for structured logging
func (e *OwnershipError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ownership_error",
		"expense_id": e.ExpenseID,
		"owner_id":   e.OwnerID,
		"caller_id":  e.CallerID,
		"error_code": CodeForbidden,
	}
}

// NewOwnershipError creates a new ownership error
func NewOwnershipError(expenseID, ownerID, callerID uint64) error {
	return &OwnershipError{
		ExpenseID: expenseID,
		OwnerID:   ownerID,
		CallerID:  callerID,
	}
}

// IsValidationError checks if the error is a validation error of any kind
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrAmountOverflow) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidMonth)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrExpenseNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsAuthenticationError checks if the error means the caller could not be identified
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrInvalidCredentials)
}
