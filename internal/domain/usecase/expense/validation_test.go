package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateCreate(t *testing.T) {
	today := entity.NewDate(2024, 3, 15)
	validator := NewExpenseValidator()

	tests := []struct {
		name           string
		req            usecase.CreateExpenseRequest
		expectedFields []string
		check          func(t *testing.T, draft entity.ExpenseDraft)
	}{
		{
			name: "Valid with every field",
			req: usecase.CreateExpenseRequest{
				Title: "Lunch", Amount: "12.5", Category: "Food", Date: "2024-03-01", Notes: "with team",
			},
			check: func(t *testing.T, draft entity.ExpenseDraft) {
				assert.Equal(t, "Lunch", draft.Title)
				assert.Equal(t, "12.50", entity.FormatAmount(draft.Amount))
				assert.Equal(t, entity.CategoryFood, draft.Category)
				assert.Equal(t, "2024-03-01", draft.Date.String())
				require.NotNil(t, draft.Notes)
				assert.Equal(t, "with team", *draft.Notes)
			},
		},
		{
			name: "Missing date defaults to today",
			req:  usecase.CreateExpenseRequest{Title: "Bus", Amount: "2", Category: "Transport"},
			check: func(t *testing.T, draft entity.ExpenseDraft) {
				assert.True(t, draft.Date.Equal(today))
				assert.Nil(t, draft.Notes)
			},
		},
		{
			name: "Unknown category becomes Other",
			req:  usecase.CreateExpenseRequest{Title: "Gift", Amount: "30", Category: "Presents"},
			check: func(t *testing.T, draft entity.ExpenseDraft) {
				assert.Equal(t, entity.CategoryOther, draft.Category)
			},
		},
		{
			name:           "Everything missing",
			req:            usecase.CreateExpenseRequest{},
			expectedFields: []string{"title", "amount", "category"},
		},
		{
			name:           "Negative amount",
			req:            usecase.CreateExpenseRequest{Title: "Refund", Amount: "-5", Category: "Other"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "Zero amount",
			req:            usecase.CreateExpenseRequest{Title: "Free", Amount: "0", Category: "Other"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "Three decimals",
			req:            usecase.CreateExpenseRequest{Title: "Fuel", Amount: "1.234", Category: "Transport"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "Too large",
			req:            usecase.CreateExpenseRequest{Title: "House", Amount: "100000000", Category: "Bills"},
			expectedFields: []string{"amount"},
		},
		{
			name:           "Bad date",
			req:            usecase.CreateExpenseRequest{Title: "Lunch", Amount: "1", Category: "Food", Date: "15/03/2024"},
			expectedFields: []string{"date"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft, err := validator.ValidateCreate(tc.req, today)
			if tc.expectedFields != nil {
				assert.Equal(t, tc.expectedFields, fieldNames(t, err))
				return
			}
			require.NoError(t, err)
			tc.check(t, draft)
		})
	}
}

func TestValidatePatch(t *testing.T) {
	validator := NewExpenseValidator()

	t.Run("Absent fields stay absent", func(t *testing.T) {
		patch, err := validator.ValidatePatch(usecase.UpdateExpenseRequest{})

		require.NoError(t, err)
		assert.False(t, patch.Title.IsSet())
		assert.False(t, patch.Amount.IsSet())
		assert.False(t, patch.Category.IsSet())
		assert.False(t, patch.Date.IsSet())
		assert.False(t, patch.Notes.IsSet())
	})

	t.Run("Empty notes are present", func(t *testing.T) {
		patch, err := validator.ValidatePatch(usecase.UpdateExpenseRequest{Notes: entity.Some("")})

		require.NoError(t, err)
		notes, ok := patch.Notes.Get()
		assert.True(t, ok)
		assert.Empty(t, notes)
	})

	t.Run("Empty category and date are ignored", func(t *testing.T) {
		patch, err := validator.ValidatePatch(usecase.UpdateExpenseRequest{
			Category: entity.Some(""),
			Date:     entity.Some(""),
		})

		require.NoError(t, err)
		assert.False(t, patch.Category.IsSet())
		assert.False(t, patch.Date.IsSet())
	})

	t.Run("Present values are validated", func(t *testing.T) {
		_, err := validator.ValidatePatch(usecase.UpdateExpenseRequest{
			Title:  entity.Some("  "),
			Amount: entity.Some("abc"),
			Date:   entity.Some("2024-13-01"),
		})

		assert.Equal(t, []string{"title", "amount", "date"}, fieldNames(t, err))
	})

	t.Run("Present values are converted", func(t *testing.T) {
		patch, err := validator.ValidatePatch(usecase.UpdateExpenseRequest{
			Title:    entity.Some(" Dinner "),
			Amount:   entity.Some("40"),
			Category: entity.Some("Unknown"),
			Date:     entity.Some("2024-02-29"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Dinner", patch.Title.OrElse(""))
		assert.Equal(t, "40.00", entity.FormatAmount(patch.Amount.OrElse(entity.MaxAmount)))
		assert.Equal(t, entity.CategoryOther, patch.Category.OrElse(""))
		assert.Equal(t, "2024-02-29", patch.Date.OrElse(entity.Date{}).String())
	})
}
