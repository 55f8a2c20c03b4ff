package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// DateLayout is the wire and storage layout of a calendar date
const DateLayout = "2006-01-02"

// MonthLayout is the layout of a month filter token
const MonthLayout = "2006-01"

// Date is a calendar date without a time component, held as UTC midnight
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date in the instant's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", errs.ErrInvalidDate, value)
	}
	return DateOf(t), nil
}

// String renders the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Equal reports whether both values name the same calendar day
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// MonthRange is an inclusive range covering one calendar month
type MonthRange struct {
	From Date // First day of the month
	To   Date // Last day of the month
}

// ParseMonth parses a YYYY-MM token into the inclusive range of its days.
// The last day comes from calendar arithmetic so 2024-02 ends on the 29th.
func ParseMonth(value string) (MonthRange, error) {
	value = strings.TrimSpace(value)
	if len(value) != len(MonthLayout) {
		return MonthRange{}, fmt.Errorf("%w: %q, expected YYYY-MM", errs.ErrInvalidMonth, value)
	}
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return MonthRange{}, fmt.Errorf("%w: %q, expected YYYY-MM", errs.ErrInvalidMonth, value)
	}
	return MonthOf(DateOf(t)), nil
}

// MonthOf returns the month range containing the given date
func MonthOf(d Date) MonthRange {
	first := NewDate(d.Year(), d.Month(), 1)
	// day 0 of the next month is the last day of this one
	last := NewDate(d.Year(), d.Month()+1, 0)
	return MonthRange{From: first, To: last}
}

// Contains reports whether the date falls inside the range, bounds included
func (r MonthRange) Contains(d Date) bool {
	return !d.Before(r.From.Time) && !d.After(r.To.Time)
}
