package expense

import (
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// ExpenseUseCase implements the expense business logic for an authenticated owner
type ExpenseUseCase struct {
	expenseRepo  persistence.ExpenseRepository
	validator    *ExpenseValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewExpenseUseCase creates a new expense use case instance
func NewExpenseUseCase(
	expenseRepo persistence.ExpenseRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo:  expenseRepo,
		validator:    NewExpenseValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}
