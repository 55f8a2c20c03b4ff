package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpenseFilter(t *testing.T) {
	t.Run("No restrictions", func(t *testing.T) {
		for _, category := range []string{"", CategoryAll} {
			filter, err := NewExpenseFilter(1, category, "")
			require.NoError(t, err)
			assert.Equal(t, ExpenseFilter{UserID: 1}, filter)
		}
	})

	t.Run("Category is matched literally", func(t *testing.T) {
		filter, err := NewExpenseFilter(1, "food", "")
		require.NoError(t, err)

		require.NotNil(t, filter.Category)
		assert.Equal(t, Category("food"), *filter.Category)
		assert.NotEqual(t, CategoryFood, *filter.Category)
	})

	t.Run("Bad month", func(t *testing.T) {
		_, err := NewExpenseFilter(1, "", "2024/02")
		assert.ErrorIs(t, err, errs.ErrInvalidMonth)
	})
}

func TestSummarize(t *testing.T) {
	march, err := ParseMonth("2024-03")
	require.NoError(t, err)

	expenses := []*Expense{
		{Category: CategoryFood, Amount: decimal.RequireFromString("10.00"), Date: NewDate(2024, 3, 2)},
		{Category: CategoryBills, Amount: decimal.RequireFromString("50.00"), Date: NewDate(2024, 2, 2)},
		{Category: CategoryFood, Amount: decimal.RequireFromString("40.00"), Date: NewDate(2024, 3, 31)},
		{Category: CategoryHealth, Amount: decimal.RequireFromString("0.01"), Date: NewDate(2024, 4, 1)},
	}

	summary := Summarize(expenses, march)

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, "100.01", FormatAmount(summary.Total))
	assert.Equal(t, "25.00", FormatAmount(summary.Average))
	assert.Equal(t, "50.00", FormatAmount(summary.CurrentMonthTotal))

	require.Len(t, summary.ByCategory, 3)
	// Bills and Food tie at 50.00 and fall back to name order
	assert.Equal(t, CategoryBills, summary.ByCategory[0].Category)
	assert.Equal(t, CategoryFood, summary.ByCategory[1].Category)
	assert.Equal(t, 2, summary.ByCategory[1].Count)
	assert.Equal(t, CategoryHealth, summary.ByCategory[2].Category)

	empty := Summarize(nil, march)
	assert.Zero(t, empty.Count)
	assert.True(t, empty.Average.IsZero())
	assert.Empty(t, empty.ByCategory)
}
