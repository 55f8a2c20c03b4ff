package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount is the largest value a DECIMAL(10,2) column holds
var MaxAmount = decimal.RequireFromString("99999999.99")

// ParseAmount validates a textual amount and returns it as a decimal.
// The amount must be strictly positive, have at most two decimal places
// and fit DECIMAL(10,2). Examples:
// - "12" becomes 12.00
// - "12.5" becomes 12.50
// - "12.345" is rejected
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, amount)
	}

	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}

	if value.Exponent() < -MaxDecimalPlaces && !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	if value.GreaterThan(MaxAmount) {
		return decimal.Zero, errs.ErrAmountOverflow
	}

	return value.Truncate(MaxDecimalPlaces), nil
}

// FormatAmount renders an amount with exactly two decimal places
// For example:
// - 10 becomes "10.00"
// - 10.1 becomes "10.10"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// SumAmounts adds the amounts of the given expenses
func SumAmounts(expenses []*Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
