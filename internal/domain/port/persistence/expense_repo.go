package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// ExpenseRepository defines the storage operations for expenses
type ExpenseRepository interface {
	// Create stores a new expense and sets its ID
	//
	// Possible errors:
	// - ErrUserNotFound: If the owner does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, expense *entity.Expense) error

	// GetByID retrieves an expense by ID regardless of owner
	//
	// Possible errors:
	// - ErrExpenseNotFound: If expense with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Expense, error)

	// List returns the expenses matching the filter, ordered by date
	// descending then creation time descending
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, filter entity.ExpenseFilter) ([]*entity.Expense, error)

	// Update writes all mutable fields of an expense, matching on both
	// its ID and its owner
	//
	// Possible errors:
	// - ErrExpenseNotFound: If no expense with that ID and owner exists
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes the expense with the given ID owned by userID
	//
	// Possible errors:
	// - ErrExpenseNotFound: If no expense with that ID and owner exists
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64, userID uint64) error
}
