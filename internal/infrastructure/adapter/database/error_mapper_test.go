package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name       string
		err        error
		entityType EntityType
		expected   error
	}{
		{"Nil", nil, EntityTypeUser, nil},
		{"UserNotFound", gorm.ErrRecordNotFound, EntityTypeUser, errs.ErrUserNotFound},
		{"ExpenseNotFound", fmt.Errorf("query: %w", gorm.ErrRecordNotFound), EntityTypeExpense, errs.ErrExpenseNotFound},
		{"PostgresDuplicateEmail", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`), EntityTypeUser, errs.ErrDuplicateUser},
		{"SqliteDuplicateEmail", errors.New("UNIQUE constraint failed: users.email"), EntityTypeUser, errs.ErrDuplicateUser},
		{"MissingOwner", errors.New("FOREIGN KEY constraint failed"), EntityTypeExpense, errs.ErrUserNotFound},
		{"NumericOverflow", errors.New("numeric field overflow"), EntityTypeExpense, errs.ErrConstraintViolation},
		{"ConnectionRefused", errors.New("dial tcp: connection refused"), EntityTypeUser, errs.ErrDatabaseConnection},
		{"DeadlineExceeded", context.DeadlineExceeded, EntityTypeExpense, errs.ErrDatabaseConnection},
		{"Unknown", errors.New("something odd"), EntityTypeExpense, errs.ErrInternalServer},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapper.MapError(tc.err, tc.entityType)
			if tc.expected == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.expected)
		})
	}
}

func TestErrorMapper_NotFound(t *testing.T) {
	mapper := NewErrorMapper()
	assert.Equal(t, errs.ErrUserNotFound, mapper.NotFound(EntityTypeUser))
	assert.Equal(t, errs.ErrExpenseNotFound, mapper.NotFound(EntityTypeExpense))
}
