package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, time.UTC, d.Location())

	for _, input := range []string{"", "2023-02-29", "2024-3-1", "15.03.2024", "2024-03-15T10:00:00Z"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.ErrorIs(t, err, errs.ErrInvalidDate)
		})
	}
}

func TestDateOf(t *testing.T) {
	instant := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	assert.True(t, DateOf(instant).Equal(NewDate(2024, 3, 15)))
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		month string
		from  string
		to    string
	}{
		{"2024-02", "2024-02-01", "2024-02-29"},
		{"2023-02", "2023-02-01", "2023-02-28"},
		{"2024-04", "2024-04-01", "2024-04-30"},
		{"2024-12", "2024-12-01", "2024-12-31"},
	}

	for _, tc := range testCases {
		t.Run(tc.month, func(t *testing.T) {
			r, err := ParseMonth(tc.month)
			require.NoError(t, err)
			assert.Equal(t, tc.from, r.From.String())
			assert.Equal(t, tc.to, r.To.String())
		})
	}

	for _, input := range []string{"", "2024", "2024-2", "2024-13", "02-2024", "2024-02-01"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := ParseMonth(input)
			assert.ErrorIs(t, err, errs.ErrInvalidMonth)
		})
	}
}

func TestMonthRangeContains(t *testing.T) {
	february, err := ParseMonth("2024-02")
	require.NoError(t, err)

	assert.True(t, february.Contains(NewDate(2024, 2, 1)))
	assert.True(t, february.Contains(NewDate(2024, 2, 29)))
	assert.False(t, february.Contains(NewDate(2024, 1, 31)))
	assert.False(t, february.Contains(NewDate(2024, 3, 1)))
}
