package handler

import (
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
	logger         coreport.Logger
}

// NewExpenseHandler creates a new expense handler instance
func NewExpenseHandler(expenseUseCase usecase.ExpenseUseCase, logger coreport.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
		logger:         logger,
	}
}

// List handles GET /expenses?category=&month=
func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	expenses, err := h.expenseUseCase.ListExpenses(c.Request.Context(), user, usecase.ExpenseQuery{
		Category: c.Query("category"),
		Month:    c.Query("month"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseListResponse(expenses))
}

// Summary handles GET /expenses/summary?month=
func (h *ExpenseHandler) Summary(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	summary, err := h.expenseUseCase.SummarizeExpenses(c.Request.Context(), user, c.Query("month"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	expense, err := h.expenseUseCase.CreateExpense(c.Request.Context(), user, req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewExpenseResponse(expense))
}

// Update handles PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	expenseID, ok := h.expenseID(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	expense, err := h.expenseUseCase.UpdateExpense(c.Request.Context(), user, expenseID, req.ToUseCase())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseResponse(expense))
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	expenseID, ok := h.expenseID(c)
	if !ok {
		return
	}

	if err := h.expenseUseCase.DeleteExpense(c.Request.Context(), user, expenseID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted"})
}

// expenseID parses the :id path segment. An id that cannot exist is answered as not found.
func (h *ExpenseHandler) expenseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, h.logger, errs.ErrExpenseNotFound)
		return 0, false
	}
	return id, true
}
