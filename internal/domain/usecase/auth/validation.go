package auth

import (
	"strings"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// validateRegister checks every registration field and reports all problems at once
func validateRegister(req usecase.RegisterRequest) error {
	verr := errs.NewValidationError()
	if strings.TrimSpace(req.Name) == "" {
		verr.Add("name", "Name is required")
	}
	if !entity.IsValidEmail(req.Email) {
		verr.Add("email", "Please include a valid email")
	}
	if !entity.IsValidPassword(req.Password) {
		verr.Add("password", "Please enter a password with 6 or more characters")
	}
	return verr.OrNil()
}

// validateLogin checks the shape of login input only; credentials are checked against the store
func validateLogin(req usecase.LoginRequest) error {
	verr := errs.NewValidationError()
	if !entity.IsValidEmail(req.Email) {
		verr.Add("email", "Please include a valid email")
	}
	if req.Password == "" {
		verr.Add("password", "Password is required")
	}
	return verr.OrNil()
}
