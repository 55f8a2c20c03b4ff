package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// DeleteExpense permanently removes one of the caller's expenses
func (u *ExpenseUseCase) DeleteExpense(ctx context.Context, user *entity.User, expenseID uint64) error {
	if _, err := u.loadOwned(ctx, user, expenseID); err != nil {
		return err
	}

	if err := u.expenseRepo.Delete(ctx, expenseID, user.ID); err != nil {
		u.logger.Error("Failed to delete expense", map[string]any{
			"userId":    user.ID,
			"expenseId": expenseID,
			"error":     err.Error(),
		})
		return err
	}

	u.logger.Info("Expense deleted", map[string]any{
		"userId":    user.ID,
		"expenseId": expenseID,
	})

	return nil
}
