package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// CreateExpenseRequest represents the API request for recording an expense
type CreateExpenseRequest struct {
	Title    string  `json:"title" binding:"required"`
	Amount   Amount  `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date"`
	Notes    *string `json:"notes"`
}

// ToUseCase maps the body to the domain request
func (r CreateExpenseRequest) ToUseCase() usecase.CreateExpenseRequest {
	req := usecase.CreateExpenseRequest{
		Title:    r.Title,
		Amount:   string(r.Amount),
		Category: r.Category,
		Date:     r.Date,
	}
	if r.Notes != nil {
		req.Notes = *r.Notes
	}
	return req
}

// UpdateExpenseRequest represents a partial update. Keys left out keep their value.
type UpdateExpenseRequest struct {
	Title    Field[string] `json:"title"`
	Amount   Field[Amount] `json:"amount"`
	Category Field[string] `json:"category"`
	Date     Field[string] `json:"date"`
	Notes    Field[string] `json:"notes"`
}

// ToUseCase maps the body to the domain request.
// A null notes clears the notes; null elsewhere is treated as absent.
func (r UpdateExpenseRequest) ToUseCase() usecase.UpdateExpenseRequest {
	var req usecase.UpdateExpenseRequest
	if r.Title.Set && !r.Title.Null {
		req.Title = entity.Some(r.Title.Value)
	}
	if r.Amount.Set && !r.Amount.Null {
		req.Amount = entity.Some(string(r.Amount.Value))
	}
	if r.Category.Set && !r.Category.Null {
		req.Category = entity.Some(r.Category.Value)
	}
	if r.Date.Set && !r.Date.Null {
		req.Date = entity.Some(r.Date.Value)
	}
	if r.Notes.Set {
		req.Notes = entity.Some(r.Notes.Value)
	}
	return req
}

// ExpenseResponse is the API view of an expense
type ExpenseResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewExpenseResponse builds the API view of e
func NewExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Amount:    entity.FormatAmount(e.Amount),
		Category:  string(e.Category),
		Date:      e.Date.String(),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// NewExpenseListResponse builds the API view of a list; never null
func NewExpenseListResponse(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, NewExpenseResponse(e))
	}
	return out
}

// CategoryTotalResponse is the spend of one category
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// SummaryResponse aggregates the caller's expenses
type SummaryResponse struct {
	Total             string                  `json:"total"`
	Count             int                     `json:"count"`
	Average           string                  `json:"average"`
	CurrentMonthTotal string                  `json:"currentMonthTotal"`
	ByCategory        []CategoryTotalResponse `json:"byCategory"`
}

// NewSummaryResponse builds the API view of a summary
func NewSummaryResponse(s *entity.ExpenseSummary) SummaryResponse {
	byCategory := make([]CategoryTotalResponse, 0, len(s.ByCategory))
	for _, ct := range s.ByCategory {
		byCategory = append(byCategory, CategoryTotalResponse{
			Category: string(ct.Category),
			Total:    entity.FormatAmount(ct.Total),
			Count:    ct.Count,
		})
	}
	return SummaryResponse{
		Total:             entity.FormatAmount(s.Total),
		Count:             s.Count,
		Average:           entity.FormatAmount(s.Average),
		CurrentMonthTotal: entity.FormatAmount(s.CurrentMonthTotal),
		ByCategory:        byCategory,
	}
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}
