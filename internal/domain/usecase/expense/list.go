package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// ListExpenses returns the caller's expenses, newest first.
// Other users' expenses are never part of the result.
func (u *ExpenseUseCase) ListExpenses(
	ctx context.Context,
	user *entity.User,
	query usecase.ExpenseQuery,
) ([]*entity.Expense, error) {
	filter, err := entity.NewExpenseFilter(user.ID, query.Category, query.Month)
	if err != nil {
		return nil, err
	}

	expenses, err := u.expenseRepo.List(ctx, filter)
	if err != nil {
		u.logger.Error("Failed to list expenses", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return expenses, nil
}
