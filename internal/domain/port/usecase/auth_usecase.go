package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// RegisterRequest represents an incoming registration
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest represents an incoming login
type LoginRequest struct {
	Email    string
	Password string
}

// AuthResult is returned by a successful registration or login
type AuthResult struct {
	User  *entity.User
	Token string
}

// RejectReason explains why the auth gate refused a request.
// It is for logs and tests only; clients always get the same answer.
type RejectReason string

// Reject reasons
const (
	RejectMissingToken    RejectReason = "missing_token"
	RejectMalformedHeader RejectReason = "malformed_header"
	RejectInvalidToken    RejectReason = "invalid_token"
	RejectUnknownUser     RejectReason = "unknown_user"
)

// AuthOutcome is the result of the auth gate: either Admitted with an identity or Rejected with a reason
type AuthOutcome struct {
	identity *entity.User
	reason   RejectReason
}

// Admitted builds an outcome that lets the request through as user
func Admitted(user *entity.User) AuthOutcome {
	return AuthOutcome{identity: user}
}

// Rejected builds an outcome that stops the request
func Rejected(reason RejectReason) AuthOutcome {
	return AuthOutcome{reason: reason}
}

// IsAdmitted reports whether the request may proceed
func (o AuthOutcome) IsAdmitted() bool {
	return o.identity != nil
}

// Identity returns the admitted user, nil when rejected
func (o AuthOutcome) Identity() *entity.User {
	return o.identity
}

// Reason returns why the request was rejected, empty when admitted
func (o AuthOutcome) Reason() RejectReason {
	return o.reason
}

// AuthUseCase defines registration, login and the auth gate
type AuthUseCase interface {
	// Register creates a user and returns it with a fresh token
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)

	// Login checks credentials and returns the user with a fresh token
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	// Authenticate inspects a raw Authorization header value.
	// The error is only set for internal failures such as an unreachable store.
	Authenticate(ctx context.Context, authorization string) (AuthOutcome, error)
}
