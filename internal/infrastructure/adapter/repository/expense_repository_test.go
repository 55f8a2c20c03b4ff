package repository

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listTitles(t *testing.T, repo *ExpenseRepository, userID uint64, category, month string) []string {
	t.Helper()

	filter, err := entity.NewExpenseFilter(userID, category, month)
	require.NoError(t, err)
	expenses, err := repo.List(context.Background(), filter)
	require.NoError(t, err)

	titles := make([]string, 0, len(expenses))
	for _, e := range expenses {
		assert.Equal(t, userID, e.UserID)
		titles = append(titles, e.Title)
	}
	return titles
}

func TestExpenseRepository_CreateAndGet(t *testing.T) {
	_, users, expenses := setupRepositories(t)
	ctx := context.Background()
	owner := newTestUser(t, "Ann", "ann@example.com", users)

	notes := "with Bob"
	day, err := entity.ParseDate("2024-03-15")
	require.NoError(t, err)
	amount, err := entity.ParseAmount("12.5")
	require.NoError(t, err)

	e, err := entity.NewExpense(owner.ID, entity.ExpenseDraft{
		Title:    "Lunch",
		Amount:   amount,
		Category: entity.CategoryFood,
		Date:     day,
		Notes:    &notes,
	}, expenses.timeProvider)
	require.NoError(t, err)
	require.NoError(t, expenses.Create(ctx, e))
	require.NotZero(t, e.ID)

	stored, err := expenses.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", stored.Title)
	assert.Equal(t, "12.50", entity.FormatAmount(stored.Amount))
	assert.Equal(t, entity.CategoryFood, stored.Category)
	assert.Equal(t, "2024-03-15", stored.Date.String())
	require.NotNil(t, stored.Notes)
	assert.Equal(t, "with Bob", *stored.Notes)

	_, err = expenses.GetByID(ctx, e.ID+100)
	assert.ErrorIs(t, err, errs.ErrExpenseNotFound)
}

func TestExpenseRepository_CreateForMissingOwner(t *testing.T) {
	_, _, expenses := setupRepositories(t)

	amount, err := entity.ParseAmount("1.00")
	require.NoError(t, err)
	e, err := entity.NewExpense(4242, entity.ExpenseDraft{
		Title:    "Orphan",
		Amount:   amount,
		Category: entity.CategoryOther,
		Date:     entity.NewDate(2024, 3, 1),
	}, expenses.timeProvider)
	require.NoError(t, err)

	assert.ErrorIs(t, expenses.Create(context.Background(), e), errs.ErrUserNotFound)
}

func TestExpenseRepository_ListOrderingAndScope(t *testing.T) {
	tdb, users, expenses := setupRepositories(t)
	ann := newTestUser(t, "Ann", "ann@example.com", users)
	bob := newTestUser(t, "Bob", "bob@example.com", users)

	tdb.CreateTestExpense(t, ann.ID, "Old", "5.00", entity.CategoryFood, "2024-01-10")
	tdb.CreateTestExpense(t, ann.ID, "SameDayFirst", "5.00", entity.CategoryFood, "2024-03-15")
	tdb.CreateTestExpense(t, ann.ID, "SameDaySecond", "5.00", entity.CategoryBills, "2024-03-15")
	tdb.CreateTestExpense(t, ann.ID, "Newest", "5.00", entity.CategoryHealth, "2024-04-01")
	tdb.CreateTestExpense(t, bob.ID, "BobsLunch", "9.00", entity.CategoryFood, "2024-03-15")

	assert.Equal(t,
		[]string{"Newest", "SameDaySecond", "SameDayFirst", "Old"},
		listTitles(t, expenses, ann.ID, "", ""))
	assert.Equal(t, []string{"BobsLunch"}, listTitles(t, expenses, bob.ID, "All", ""))
}

func TestExpenseRepository_ListFilters(t *testing.T) {
	tdb, users, expenses := setupRepositories(t)
	ann := newTestUser(t, "Ann", "ann@example.com", users)

	tdb.CreateTestExpense(t, ann.ID, "JanFood", "5.00", entity.CategoryFood, "2024-01-31")
	tdb.CreateTestExpense(t, ann.ID, "FebFirst", "5.00", entity.CategoryFood, "2024-02-01")
	tdb.CreateTestExpense(t, ann.ID, "LeapDay", "5.00", entity.CategoryBills, "2024-02-29")
	tdb.CreateTestExpense(t, ann.ID, "MarFirst", "5.00", entity.CategoryFood, "2024-03-01")

	t.Run("Category", func(t *testing.T) {
		assert.Equal(t, []string{"MarFirst", "FebFirst", "JanFood"}, listTitles(t, expenses, ann.ID, "Food", ""))
		assert.Empty(t, listTitles(t, expenses, ann.ID, "food", ""))
	})

	t.Run("LeapYearMonth", func(t *testing.T) {
		assert.Equal(t, []string{"LeapDay", "FebFirst"}, listTitles(t, expenses, ann.ID, "", "2024-02"))
	})

	t.Run("CategoryAndMonth", func(t *testing.T) {
		assert.Equal(t, []string{"FebFirst"}, listTitles(t, expenses, ann.ID, "Food", "2024-02"))
	})
}

func TestExpenseRepository_Update(t *testing.T) {
	tdb, users, expenses := setupRepositories(t)
	ctx := context.Background()
	ann := newTestUser(t, "Ann", "ann@example.com", users)
	bob := newTestUser(t, "Bob", "bob@example.com", users)
	id := tdb.CreateTestExpense(t, ann.ID, "Lunch", "12.50", entity.CategoryFood, "2024-03-15")

	e, err := expenses.GetByID(ctx, id)
	require.NoError(t, err)

	e.ApplyPatch(entity.ExpensePatch{
		Title: entity.Some("Dinner"),
		Notes: entity.Some("late"),
	}, expenses.timeProvider)
	require.NoError(t, expenses.Update(ctx, e))

	updated, err := expenses.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dinner", updated.Title)
	assert.Equal(t, "12.50", entity.FormatAmount(updated.Amount))
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "late", *updated.Notes)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	updated.ApplyPatch(entity.ExpensePatch{Notes: entity.Some("")}, expenses.timeProvider)
	require.NoError(t, expenses.Update(ctx, updated))
	cleared, err := expenses.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, cleared.Notes)
	assert.Equal(t, "Dinner", cleared.Title)

	// the write is scoped to the owner even if a caller skips the ownership check
	foreign := *cleared
	foreign.UserID = bob.ID
	foreign.Title = "Hijacked"
	assert.ErrorIs(t, expenses.Update(ctx, &foreign), errs.ErrExpenseNotFound)
}

func TestExpenseRepository_Delete(t *testing.T) {
	tdb, users, expenses := setupRepositories(t)
	ctx := context.Background()
	ann := newTestUser(t, "Ann", "ann@example.com", users)
	bob := newTestUser(t, "Bob", "bob@example.com", users)
	id := tdb.CreateTestExpense(t, ann.ID, "Lunch", "12.50", entity.CategoryFood, "2024-03-15")

	assert.ErrorIs(t, expenses.Delete(ctx, id, bob.ID), errs.ErrExpenseNotFound)
	_, err := expenses.GetByID(ctx, id)
	require.NoError(t, err)

	require.NoError(t, expenses.Delete(ctx, id, ann.ID))
	_, err = expenses.GetByID(ctx, id)
	assert.ErrorIs(t, err, errs.ErrExpenseNotFound)

	assert.ErrorIs(t, expenses.Delete(ctx, id, ann.ID), errs.ErrExpenseNotFound)
}
