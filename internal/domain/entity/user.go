package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// User represents a registered account that owns expenses
type User struct {
	ID           uint64    // Unique identifier, assigned by the store
	Name         string    // Display name
	Email        string    // Unique login email, kept exactly as registered
	PasswordHash string    // One-way hash of the password, never the plaintext
	CreatedAt    time.Time // When the user registered
	UpdatedAt    time.Time // When the record last changed
}

// NewUser creates a user from an already hashed password
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	verr := errs.NewValidationError()
	switch {
	case strings.TrimSpace(name) == "":
		verr.Add("name", "Name is required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		verr.Add("name", "Name must be at most 100 characters")
	}
	if !IsValidEmail(email) {
		verr.Add("email", "Please include a valid email")
	}
	if passwordHash == "" {
		verr.Add("password", "Password is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
