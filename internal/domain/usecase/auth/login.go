package auth

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Login verifies credentials and returns the user with a fresh token.
// An unknown email and a wrong password produce the same error.
func (a *AuthUseCase) Login(ctx context.Context, req usecase.LoginRequest) (*usecase.AuthResult, error) {
	if err := validateLogin(req); err != nil {
		return nil, err
	}

	user, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		a.logger.Debug("Password mismatch", map[string]any{
			"userId": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("Failed to issue token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
	})

	return &usecase.AuthResult{User: user, Token: token}, nil
}
