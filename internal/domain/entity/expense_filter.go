package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ExpenseFilter selects the expenses of one owner
type ExpenseFilter struct {
	UserID   uint64      // Owner; always applied
	Category *Category   // Exact match when set
	Month    *MonthRange // Inclusive date range when set
}

// NewExpenseFilter builds a filter from raw query values.
// An empty category or the "All" sentinel means no category restriction,
// any other value is matched literally. An empty month means no date restriction.
func NewExpenseFilter(userID uint64, category, month string) (ExpenseFilter, error) {
	filter := ExpenseFilter{UserID: userID}

	if category != "" && category != CategoryAll {
		c := Category(category)
		filter.Category = &c
	}

	if month != "" {
		r, err := ParseMonth(month)
		if err != nil {
			return ExpenseFilter{}, err
		}
		filter.Month = &r
	}

	return filter, nil
}

// CategoryTotal is the spend of one category
type CategoryTotal struct {
	Category Category
	Total    decimal.Decimal
	Count    int
}

// ExpenseSummary aggregates a set of expenses
type ExpenseSummary struct {
	Total             decimal.Decimal
	Count             int
	Average           decimal.Decimal
	CurrentMonthTotal decimal.Decimal
	ByCategory        []CategoryTotal
}

// Summarize aggregates expenses; currentMonth selects the expenses counted in CurrentMonthTotal
func Summarize(expenses []*Expense, currentMonth MonthRange) ExpenseSummary {
	summary := ExpenseSummary{
		Total:             SumAmounts(expenses),
		Count:             len(expenses),
		Average:           decimal.Zero,
		CurrentMonthTotal: decimal.Zero,
	}

	if summary.Count > 0 {
		summary.Average = summary.Total.DivRound(decimal.NewFromInt(int64(summary.Count)), MaxDecimalPlaces)
	}

	byCategory := make(map[Category]*CategoryTotal)
	for _, e := range expenses {
		if currentMonth.Contains(e.Date) {
			summary.CurrentMonthTotal = summary.CurrentMonthTotal.Add(e.Amount)
		}
		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category, Total: decimal.Zero}
			byCategory[e.Category] = ct
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++
	}

	summary.ByCategory = make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		summary.ByCategory = append(summary.ByCategory, *ct)
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	return summary
}
