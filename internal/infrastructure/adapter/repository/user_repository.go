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

// UserRepository implements the credential store using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
	queryTimeout time.Duration
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  database.NewErrorMapper(),
		queryTimeout: queryTimeout,
	}
}

// handleDatabaseError maps a store error and logs what is not a plain miss
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, database.EntityTypeUser)
	if errors.Is(mapped, errs.ErrUserNotFound) || errors.Is(mapped, errs.ErrDuplicateUser) {
		return mapped
	}

	fields["operation"] = operation
	fields["error"] = err.Error()
	r.logger.Error("Database error in user repository", fields)
	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var row model.User
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_id", err, map[string]any{"user_id": id})
	}

	return model.ToUserEntity(&row), nil
}

// GetByEmail retrieves a user by the exact email it registered with
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var row model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_email", err, map[string]any{})
	}

	return model.ToUserEntity(&row), nil
}

// Create stores a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	row := model.FromUserEntity(user)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return r.handleDatabaseError("create", err, map[string]any{})
	}

	user.ID = row.ID
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Delete removes a user; the database cascades to the user's expenses
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	ctx, cancel := r.timeProvider.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("delete", result.Error, map[string]any{"user_id": id})
	}
	if result.RowsAffected == 0 {
		return r.errorMapper.NotFound(database.EntityTypeUser)
	}

	r.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
