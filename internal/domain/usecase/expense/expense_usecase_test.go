package expense

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func setupExpenseUseCase(t *testing.T) (usecase.ExpenseUseCase, *persistencemocks.MockExpenseRepository) {
	mockRepo := persistencemocks.NewMockExpenseRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewExpenseUseCase(mockRepo, mockTime, mockLogger), mockRepo
}

func stringPtr(s string) *string {
	return &s
}

func sampleExpense(id, owner uint64) *entity.Expense {
	return &entity.Expense{
		ID:        id,
		UserID:    owner,
		Title:     "Groceries",
		Amount:    decimal.RequireFromString("42.10"),
		Category:  entity.CategoryFood,
		Date:      entity.NewDate(2024, 3, 10),
		Notes:     stringPtr("weekly"),
		CreatedAt: fixedTime.Add(-time.Hour),
		UpdatedAt: fixedTime.Add(-time.Hour),
	}
}

func TestListExpenses(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 1}

	t.Run("Scopes to the caller and applies filters", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)
		expected := []*entity.Expense{sampleExpense(3, 1)}

		mockRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f entity.ExpenseFilter) bool {
			return f.UserID == 1 &&
				f.Category != nil && *f.Category == entity.CategoryFood &&
				f.Month != nil && f.Month.From.String() == "2024-02-01" && f.Month.To.Day() == 29
		})).Return(expected, nil).Once()

		expenses, err := uc.ListExpenses(ctx, owner, usecase.ExpenseQuery{Category: "Food", Month: "2024-02"})

		require.NoError(t, err)
		assert.Equal(t, expected, expenses)
	})

	t.Run("All means no category filter", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().List(mock.Anything, entity.ExpenseFilter{UserID: 1}).Return(nil, nil).Once()

		expenses, err := uc.ListExpenses(ctx, owner, usecase.ExpenseQuery{Category: "All"})

		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("Malformed month", func(t *testing.T) {
		uc, _ := setupExpenseUseCase(t)

		_, err := uc.ListExpenses(ctx, owner, usecase.ExpenseQuery{Month: "2024-3"})

		assert.ErrorIs(t, err, errs.ErrInvalidMonth)
	})

	t.Run("Store failure", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := uc.ListExpenses(ctx, owner, usecase.ExpenseQuery{})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 5}

	t.Run("Owner comes from the caller and date defaults to today", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.Expense) bool {
			return e.UserID == 5 && e.Date.String() == "2024-03-15" && e.Category == entity.CategoryOther
		})).Run(func(_ context.Context, e *entity.Expense) {
			e.ID = 11
		}).Return(nil).Once()

		expense, err := uc.CreateExpense(ctx, owner, usecase.CreateExpenseRequest{
			Title: "Mystery", Amount: "9.99", Category: "Gadgets",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(11), expense.ID)
		assert.Equal(t, "9.99", entity.FormatAmount(expense.Amount))
		assert.Equal(t, fixedTime, expense.CreatedAt)
	})

	t.Run("Invalid input never reaches the store", func(t *testing.T) {
		uc, _ := setupExpenseUseCase(t)

		expense, err := uc.CreateExpense(ctx, owner, usecase.CreateExpenseRequest{Title: "x", Amount: "-1", Category: "Food"})

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUpdateExpense(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 1}
	stranger := &entity.User{ID: 2}

	t.Run("Clearing notes keeps every other field", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)
		original := sampleExpense(3, 1)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(sampleExpense(3, 1), nil).Once()
		mockRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		updated, err := uc.UpdateExpense(ctx, owner, 3, usecase.UpdateExpenseRequest{Notes: entity.Some("")})

		require.NoError(t, err)
		assert.Nil(t, updated.Notes)
		assert.Equal(t, original.Title, updated.Title)
		assert.True(t, original.Amount.Equal(updated.Amount))
		assert.Equal(t, original.Category, updated.Category)
		assert.True(t, original.Date.Equal(updated.Date))
		assert.Equal(t, fixedTime, updated.UpdatedAt)
	})

	t.Run("Present fields replace current values", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(sampleExpense(3, 1), nil).Once()
		mockRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(e *entity.Expense) bool {
			return e.Title == "Dinner" && e.Amount.Equal(decimal.NewFromInt(60)) && e.Notes != nil && *e.Notes == "weekly"
		})).Return(nil).Once()

		_, err := uc.UpdateExpense(ctx, owner, 3, usecase.UpdateExpenseRequest{
			Title:  entity.Some("Dinner"),
			Amount: entity.Some("60"),
		})

		require.NoError(t, err)
	})

	t.Run("Missing expense", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(404)).Return(nil, errs.ErrExpenseNotFound).Once()

		_, err := uc.UpdateExpense(ctx, owner, 404, usecase.UpdateExpenseRequest{Title: entity.Some("x")})

		assert.ErrorIs(t, err, errs.ErrExpenseNotFound)
	})

	t.Run("Foreign expense is forbidden and untouched", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(sampleExpense(3, 1), nil).Once()

		_, err := uc.UpdateExpense(ctx, stranger, 3, usecase.UpdateExpenseRequest{Title: entity.Some("mine now")})

		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.NotErrorIs(t, err, errs.ErrExpenseNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Invalid patch", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(sampleExpense(3, 1), nil).Once()

		_, err := uc.UpdateExpense(ctx, owner, 3, usecase.UpdateExpenseRequest{Amount: entity.Some("0")})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner deletes", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(sampleExpense(3, 1), nil).Once()
		mockRepo.EXPECT().Delete(mock.Anything, uint64(3), uint64(1)).Return(nil).Once()

		err := uc.DeleteExpense(ctx, &entity.User{ID: 1}, 3)

		assert.NoError(t, err)
	})

	t.Run("Missing expense", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(nil, errs.ErrExpenseNotFound).Once()

		err := uc.DeleteExpense(ctx, &entity.User{ID: 1}, 3)

		assert.ErrorIs(t, err, errs.ErrExpenseNotFound)
	})

	t.Run("Foreign expense stays", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(sampleExpense(3, 1), nil).Once()

		err := uc.DeleteExpense(ctx, &entity.User{ID: 2}, 3)

		var ownership *errs.OwnershipError
		require.ErrorAs(t, err, &ownership)
		assert.Equal(t, uint64(1), ownership.OwnerID)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSummarizeExpenses(t *testing.T) {
	ctx := context.Background()
	owner := &entity.User{ID: 1}

	t.Run("Aggregates the caller's expenses", func(t *testing.T) {
		uc, mockRepo := setupExpenseUseCase(t)

		march := sampleExpense(1, 1)
		february := sampleExpense(2, 1)
		february.Date = entity.NewDate(2024, 2, 1)
		february.Category = entity.CategoryBills
		february.Amount = decimal.RequireFromString("100")

		mockRepo.EXPECT().List(mock.Anything, entity.ExpenseFilter{UserID: 1}).
			Return([]*entity.Expense{march, february}, nil).Once()

		summary, err := uc.SummarizeExpenses(ctx, owner, "")

		require.NoError(t, err)
		assert.Equal(t, 2, summary.Count)
		assert.Equal(t, "142.10", entity.FormatAmount(summary.Total))
		assert.Equal(t, "71.05", entity.FormatAmount(summary.Average))
		assert.Equal(t, "42.10", entity.FormatAmount(summary.CurrentMonthTotal))
		require.Len(t, summary.ByCategory, 2)
		assert.Equal(t, entity.CategoryBills, summary.ByCategory[0].Category)
	})

	t.Run("Malformed month", func(t *testing.T) {
		uc, _ := setupExpenseUseCase(t)

		_, err := uc.SummarizeExpenses(ctx, owner, "March")

		assert.ErrorIs(t, err, errs.ErrInvalidMonth)
	})
}
