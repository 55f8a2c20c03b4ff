package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// CreateExpense stores a new expense owned by the caller
func (u *ExpenseUseCase) CreateExpense(
	ctx context.Context,
	user *entity.User,
	req usecase.CreateExpenseRequest,
) (*entity.Expense, error) {
	today := entity.DateOf(u.timeProvider.Now())
	draft, err := u.validator.ValidateCreate(req, today)
	if err != nil {
		return nil, err
	}

	expense, err := entity.NewExpense(user.ID, draft, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.expenseRepo.Create(ctx, expense); err != nil {
		u.logger.Error("Failed to create expense", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Expense created", map[string]any{
		"userId":    user.ID,
		"expenseId": expense.ID,
		"amount":    entity.FormatAmount(expense.Amount),
	})

	return expense, nil
}
