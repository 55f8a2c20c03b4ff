package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseRepository implements ExpenseRepository using GORM
type ExpenseRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
	queryTimeout time.Duration
}

// NewExpenseRepository creates a new ExpenseRepository instance
func NewExpenseRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *ExpenseRepository {
	return &ExpenseRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  database.NewErrorMapper(),
		queryTimeout: queryTimeout,
	}
}

func (r *ExpenseRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, database.EntityTypeExpense)
	if errors.Is(mapped, errs.ErrExpenseNotFound) {
		return mapped
	}

	fields["operation"] = operation
	fields["error"] = err.Error()
	r.logger.Error("Database error in expense repository", fields)
	return mapped
}

// Create stores a new expense and assigns its ID
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	row := model.FromExpenseEntity(expense)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return r.handleDatabaseError("create", err, map[string]any{"user_id": expense.UserID})
	}

	expense.ID = row.ID
	expense.CreatedAt = row.CreatedAt
	expense.UpdatedAt = row.UpdatedAt

	r.logger.Debug("Expense created", map[string]any{
		"expense_id": expense.ID,
		"user_id":    expense.UserID,
	})
	return nil
}

// GetByID retrieves an expense regardless of owner; ownership is checked by the caller
func (r *ExpenseRepository) GetByID(ctx context.Context, id uint64) (*entity.Expense, error) {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var row model.Expense
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_id", err, map[string]any{"expense_id": id})
	}

	return model.ToExpenseEntity(&row), nil
}

// List returns the owner's expenses matching the filter, newest first
func (r *ExpenseRepository) List(ctx context.Context, filter entity.ExpenseFilter) ([]*entity.Expense, error) {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&model.Expense{}).Where("user_id = ?", filter.UserID)
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Month != nil {
		query = query.Where("date >= ? AND date <= ?",
			model.DateColumn(filter.Month.From), model.DateColumn(filter.Month.To))
	}

	var rows []model.Expense
	err := query.
		Order("date DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list", err, map[string]any{"user_id": filter.UserID})
	}

	expenses := make([]*entity.Expense, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, model.ToExpenseEntity(&rows[i]))
	}
	return expenses, nil
}

// Update writes the mutable fields of an expense owned by expense.UserID
func (r *ExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	row := model.FromExpenseEntity(expense)
	result := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]any{
			"title":      row.Title,
			"amount":     row.Amount,
			"category":   row.Category,
			"date":       row.Date,
			"notes":      row.Notes,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update", result.Error, map[string]any{"expense_id": expense.ID})
	}
	if result.RowsAffected == 0 {
		return r.errorMapper.NotFound(database.EntityTypeExpense)
	}

	r.logger.Debug("Expense updated", map[string]any{
		"expense_id": expense.ID,
		"user_id":    expense.UserID,
	})
	return nil
}

// Delete removes an expense owned by userID
func (r *ExpenseRepository) Delete(ctx context.Context, id, userID uint64) error {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Expense{})
	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, map[string]any{"expense_id": id})
	}
	if result.RowsAffected == 0 {
		return r.errorMapper.NotFound(database.EntityTypeExpense)
	}

	r.logger.Debug("Expense deleted", map[string]any{
		"expense_id": id,
		"user_id":    userID,
	})
	return nil
}
