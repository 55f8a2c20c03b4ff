package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// ExpenseQuery holds the raw list filters
type ExpenseQuery struct {
	Category string // Empty or "All" for every category
	Month    string // YYYY-MM, empty for every month
}

// CreateExpenseRequest represents an incoming expense
type CreateExpenseRequest struct {
	Title    string
	Amount   string
	Category string
	Date     string // YYYY-MM-DD, empty for today
	Notes    string
}

// UpdateExpenseRequest represents a partial update; only set fields are applied
type UpdateExpenseRequest struct {
	Title    entity.Optional[string]
	Amount   entity.Optional[string]
	Category entity.Optional[string]
	Date     entity.Optional[string]
	Notes    entity.Optional[string]
}

// ExpenseUseCase defines the expense operations available to an authenticated user
type ExpenseUseCase interface {
	// ListExpenses returns the caller's expenses matching the query
	ListExpenses(ctx context.Context, user *entity.User, query ExpenseQuery) ([]*entity.Expense, error)

	// CreateExpense stores a new expense owned by the caller
	CreateExpense(ctx context.Context, user *entity.User, req CreateExpenseRequest) (*entity.Expense, error)

	// UpdateExpense applies a partial update to one of the caller's expenses
	UpdateExpense(ctx context.Context, user *entity.User, expenseID uint64, req UpdateExpenseRequest) (*entity.Expense, error)

	// DeleteExpense removes one of the caller's expenses
	DeleteExpense(ctx context.Context, user *entity.User, expenseID uint64) error

	// SummarizeExpenses aggregates the caller's expenses, optionally for one month
	SummarizeExpenses(ctx context.Context, user *entity.User, month string) (*entity.ExpenseSummary, error)
}
