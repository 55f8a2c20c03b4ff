package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// UpdateExpense applies the present fields of req to one of the caller's expenses.
// A missing expense is reported before ownership, ownership before input problems.
func (u *ExpenseUseCase) UpdateExpense(
	ctx context.Context,
	user *entity.User,
	expenseID uint64,
	req usecase.UpdateExpenseRequest,
) (*entity.Expense, error) {
	expense, err := u.loadOwned(ctx, user, expenseID)
	if err != nil {
		return nil, err
	}

	patch, err := u.validator.ValidatePatch(req)
	if err != nil {
		return nil, err
	}

	expense.ApplyPatch(patch, u.timeProvider)

	if err := u.expenseRepo.Update(ctx, expense); err != nil {
		u.logger.Error("Failed to update expense", map[string]any{
			"userId":    user.ID,
			"expenseId": expenseID,
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Expense updated", map[string]any{
		"userId":    user.ID,
		"expenseId": expenseID,
	})

	return expense, nil
}

// loadOwned fetches an expense and checks that user owns it
func (u *ExpenseUseCase) loadOwned(ctx context.Context, user *entity.User, expenseID uint64) (*entity.Expense, error) {
	expense, err := u.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if err := expense.CheckOwner(user.ID); err != nil {
		u.logger.Warn("Expense access denied", map[string]any{
			"userId":    user.ID,
			"expenseId": expenseID,
		})
		return nil, err
	}

	return expense, nil
}
