package expense

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Field messages returned to clients
const (
	msgTitleRequired    = "Title is required"
	msgTitleTooLong     = "Title must be at most 255 characters"
	msgAmountInvalid    = "Amount must be a positive number with at most two decimal places"
	msgAmountTooLarge   = "Amount must be less than 100000000"
	msgCategoryRequired = "Category is required"
	msgDateInvalid      = "Date must be in YYYY-MM-DD format"
)

// ExpenseValidator turns raw expense input into validated drafts and patches
type ExpenseValidator struct{}

// NewExpenseValidator creates a new ExpenseValidator
func NewExpenseValidator() *ExpenseValidator {
	return &ExpenseValidator{}
}

// ValidateCreate checks a create request. A missing date becomes today.
func (v *ExpenseValidator) ValidateCreate(req usecase.CreateExpenseRequest, today entity.Date) (entity.ExpenseDraft, error) {
	verr := errs.NewValidationError()
	draft := entity.ExpenseDraft{Date: today}

	draft.Title = v.validateTitle(req.Title, verr)
	draft.Amount = v.validateAmount(req.Amount, verr)

	if strings.TrimSpace(req.Category) == "" {
		verr.Add("category", msgCategoryRequired)
	} else {
		draft.Category = entity.NormalizeCategory(strings.TrimSpace(req.Category))
	}

	if req.Date != "" {
		draft.Date = v.validateDate(req.Date, verr)
	}

	if req.Notes != "" {
		notes := req.Notes
		draft.Notes = &notes
	}

	if err := verr.OrNil(); err != nil {
		return entity.ExpenseDraft{}, err
	}
	return draft, nil
}

// ValidatePatch checks the present fields of an update request.
// An empty category or date counts as absent; empty notes clear the notes.
func (v *ExpenseValidator) ValidatePatch(req usecase.UpdateExpenseRequest) (entity.ExpensePatch, error) {
	verr := errs.NewValidationError()
	var patch entity.ExpensePatch

	if title, ok := req.Title.Get(); ok {
		patch.Title = entity.Some(v.validateTitle(title, verr))
	}
	if amount, ok := req.Amount.Get(); ok {
		patch.Amount = entity.Some(v.validateAmount(amount, verr))
	}
	if category, ok := req.Category.Get(); ok && strings.TrimSpace(category) != "" {
		patch.Category = entity.Some(entity.NormalizeCategory(strings.TrimSpace(category)))
	}
	if date, ok := req.Date.Get(); ok && date != "" {
		patch.Date = entity.Some(v.validateDate(date, verr))
	}
	if notes, ok := req.Notes.Get(); ok {
		patch.Notes = entity.Some(notes)
	}

	if err := verr.OrNil(); err != nil {
		return entity.ExpensePatch{}, err
	}
	return patch, nil
}

func (v *ExpenseValidator) validateTitle(title string, verr *errs.ValidationError) string {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		verr.Add("title", msgTitleRequired)
	case utf8.RuneCountInString(title) > entity.MaxTitleLength:
		verr.Add("title", msgTitleTooLong)
	}
	return title
}

func (v *ExpenseValidator) validateAmount(amount string, verr *errs.ValidationError) decimal.Decimal {
	value, err := entity.ParseAmount(amount)
	switch {
	case err == nil:
		return value
	case errors.Is(err, errs.ErrAmountOverflow):
		verr.Add("amount", msgAmountTooLarge)
	default:
		verr.Add("amount", msgAmountInvalid)
	}
	return decimal.Zero
}

func (v *ExpenseValidator) validateDate(date string, verr *errs.ValidationError) entity.Date {
	d, err := entity.ParseDate(date)
	if err != nil {
		verr.Add("date", msgDateInvalid)
	}
	return d
}
