package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// SummarizeExpenses aggregates the caller's expenses, restricted to month when given.
// CurrentMonthTotal counts the selected expenses dated in the clock's month.
func (u *ExpenseUseCase) SummarizeExpenses(ctx context.Context, user *entity.User, month string) (*entity.ExpenseSummary, error) {
	filter, err := entity.NewExpenseFilter(user.ID, "", month)
	if err != nil {
		return nil, err
	}

	expenses, err := u.expenseRepo.List(ctx, filter)
	if err != nil {
		u.logger.Error("Failed to load expenses for summary", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	currentMonth := entity.MonthOf(entity.DateOf(u.timeProvider.Now()))
	summary := entity.Summarize(expenses, currentMonth)
	return &summary, nil
}
