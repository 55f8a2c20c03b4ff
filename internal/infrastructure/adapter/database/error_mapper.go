package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeExpense represents the expense entity
	EntityTypeExpense EntityType = "expense"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.NotFound(entityType)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s query: %v", errs.ErrDatabaseConnection, entityType, err)
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Postgres reports "duplicate key", sqlite "UNIQUE constraint failed"
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		if entityType == EntityTypeUser {
			return errs.ErrDuplicateUser
		}
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)

	// A missing owner on insert
	case strings.Contains(errMsg, "foreign key constraint"):
		if entityType == EntityTypeExpense {
			return errs.ErrUserNotFound
		}
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)

	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "numeric field overflow"):
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "timeout"):
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)

	default:
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
}

// NotFound returns the domain not found error for an entity type
func (m *ErrorMapper) NotFound(entityType EntityType) error {
	if entityType == EntityTypeExpense {
		return errs.ErrExpenseNotFound
	}
	return errs.ErrUserNotFound
}
