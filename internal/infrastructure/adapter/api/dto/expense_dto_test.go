package dto

import (
	"encoding/json"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Amount
		wantErr bool
	}{
		{"Number", `{"amount":12.5}`, "12.5", false},
		{"Integer", `{"amount":7}`, "7", false},
		{"String", `{"amount":"12.50"}`, "12.50", false},
		{"Null", `{"amount":null}`, "", false},
		{"Bool", `{"amount":true}`, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateExpenseRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, req.Amount)
		})
	}
}

func TestUpdateExpenseRequest_ToUseCase(t *testing.T) {
	t.Run("OnlyNotesCleared", func(t *testing.T) {
		var req UpdateExpenseRequest
		require.NoError(t, json.Unmarshal([]byte(`{"notes":""}`), &req))

		uc := req.ToUseCase()
		assert.False(t, uc.Title.IsSet())
		assert.False(t, uc.Amount.IsSet())
		assert.False(t, uc.Category.IsSet())
		assert.False(t, uc.Date.IsSet())
		assert.Equal(t, entity.Some(""), uc.Notes)
	})

	t.Run("NullNotesClearAndNullTitleIsAbsent", func(t *testing.T) {
		var req UpdateExpenseRequest
		require.NoError(t, json.Unmarshal([]byte(`{"notes":null,"title":null,"amount":"3.10"}`), &req))

		uc := req.ToUseCase()
		assert.False(t, uc.Title.IsSet())
		assert.Equal(t, entity.Some("3.10"), uc.Amount)
		assert.Equal(t, entity.Some(""), uc.Notes)
	})

	t.Run("Empty", func(t *testing.T) {
		var req UpdateExpenseRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
		assert.Equal(t, UpdateExpenseRequest{}, req)
	})
}

func TestNewExpenseResponse(t *testing.T) {
	amount, err := entity.ParseAmount("12.5")
	require.NoError(t, err)

	resp := NewExpenseResponse(&entity.Expense{
		ID:       3,
		UserID:   1,
		Title:    "Lunch",
		Amount:   amount,
		Category: entity.CategoryFood,
		Date:     entity.NewDate(2024, 2, 29),
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amount":"12.50"`)
	assert.Contains(t, string(raw), `"date":"2024-02-29"`)
	assert.Contains(t, string(raw), `"notes":null`)

	assert.Equal(t, []ExpenseResponse{}, NewExpenseListResponse(nil))
}
