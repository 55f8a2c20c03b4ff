package auth

import (
	"context"
	"errors"
	"strings"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

const bearerScheme = "Bearer"

// Authenticate turns an Authorization header into an admitted user or a rejection.
// Only a failing store produces an error.
func (a *AuthUseCase) Authenticate(ctx context.Context, authorization string) (usecase.AuthOutcome, error) {
	token, reason := extractBearerToken(authorization)
	if reason != "" {
		return a.reject(reason), nil
	}

	userID, err := a.tokens.Verify(token)
	if err != nil {
		return a.reject(usecase.RejectInvalidToken), nil
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return a.reject(usecase.RejectUnknownUser), nil
		}
		a.logger.Error("Failed to resolve token subject", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return usecase.AuthOutcome{}, err
	}

	return usecase.Admitted(user), nil
}

func (a *AuthUseCase) reject(reason usecase.RejectReason) usecase.AuthOutcome {
	a.logger.Debug("Request rejected by auth gate", map[string]any{
		"reason": string(reason),
	})
	return usecase.Rejected(reason)
}

// extractBearerToken splits "Bearer <token>"
func extractBearerToken(authorization string) (string, usecase.RejectReason) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return "", usecase.RejectMissingToken
	}

	scheme, token, found := strings.Cut(authorization, " ")
	if scheme != bearerScheme {
		return "", usecase.RejectMalformedHeader
	}
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", usecase.RejectMissingToken
	}
	return token, ""
}
