package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Register creates a new user and returns it with a fresh token
func (a *AuthUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.AuthResult, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	// Check if the email is already taken
	_, err := a.userRepo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, errs.ErrDuplicateUser
	case !errors.Is(err, errs.ErrUserNotFound):
		return nil, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := entity.NewUser(req.Name, req.Email, hash, a.timeProvider)
	if err != nil {
		return nil, err
	}

	// The store still rejects a concurrent registration of the same email
	if err := a.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, errs.ErrDuplicateUser) {
			a.logger.Error("Failed to create user", map[string]any{
				"error": err.Error(),
			})
		}
		return nil, err
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Failed to issue token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"userId": user.ID,
	})

	return &usecase.AuthResult{User: user, Token: token}, nil
}
