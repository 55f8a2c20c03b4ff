package auth

import (
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// AuthUseCase implements registration, login and request authentication
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.TokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
