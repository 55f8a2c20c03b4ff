package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Expense represents a single spending record owned by one user
type Expense struct {
	ID        uint64          // Unique identifier, assigned by the store
	UserID    uint64          // Owner; never changes after creation
	Title     string          // Short description
	Amount    decimal.Decimal // Positive amount with two decimal places
	Category  Category        // One of Categories
	Date      Date            // Calendar date of the expense
	Notes     *string         // Optional free text, nil when absent
	CreatedAt time.Time       // When the record was stored
	UpdatedAt time.Time       // When the record last changed
}

// ExpenseDraft carries validated values for a new expense
type ExpenseDraft struct {
	Title    string
	Amount   decimal.Decimal
	Category Category
	Date     Date
	Notes    *string
}

// ExpensePatch carries validated values for a partial update.
// Absent fields keep their current value. A present empty Notes clears the notes.
type ExpensePatch struct {
	Title    Optional[string]
	Amount   Optional[decimal.Decimal]
	Category Optional[Category]
	Date     Optional[Date]
	Notes    Optional[string]
}

// NewExpense creates an expense for the given owner
func NewExpense(userID uint64, draft ExpenseDraft, timeProvider coreport.TimeProvider) (*Expense, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !draft.Amount.IsPositive() {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Expense{
		UserID:    userID,
		Title:     draft.Title,
		Amount:    draft.Amount,
		Category:  NormalizeCategory(string(draft.Category)),
		Date:      draft.Date,
		Notes:     normalizeNotes(draft.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyPatch merges the present fields of patch into the expense
func (e *Expense) ApplyPatch(patch ExpensePatch, timeProvider coreport.TimeProvider) {
	e.Title = patch.Title.OrElse(e.Title)
	e.Amount = patch.Amount.OrElse(e.Amount)
	e.Category = patch.Category.OrElse(e.Category)
	e.Date = patch.Date.OrElse(e.Date)
	if notes, ok := patch.Notes.Get(); ok {
		e.Notes = normalizeNotes(&notes)
	}
	e.UpdatedAt = timeProvider.Now()
}

// IsOwnedBy reports whether userID owns the expense
func (e *Expense) IsOwnedBy(userID uint64) bool {
	return e.UserID == userID
}

// CheckOwner returns an ownership error when userID is not the owner
func (e *Expense) CheckOwner(userID uint64) error {
	if e.IsOwnedBy(userID) {
		return nil
	}
	return errs.NewOwnershipError(e.ID, e.UserID, userID)
}

// normalizeNotes stores empty notes as absent
func normalizeNotes(notes *string) *string {
	if notes == nil || *notes == "" {
		return nil
	}
	n := *notes
	return &n
}
