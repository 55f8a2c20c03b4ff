package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToUseCase maps the body to the domain request
func (r RegisterRequest) ToUseCase() usecase.RegisterRequest {
	return usecase.RegisterRequest{Name: r.Name, Email: r.Email, Password: r.Password}
}

// LoginRequest represents the API request for signing in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToUseCase maps the body to the domain request
func (r LoginRequest) ToUseCase() usecase.LoginRequest {
	return usecase.LoginRequest{Email: r.Email, Password: r.Password}
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// NewAuthResponse builds the response for an authenticated user
func NewAuthResponse(result *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		ID:    result.User.ID,
		Name:  result.User.Name,
		Email: result.User.Email,
		Token: result.Token,
	}
}

// UserResponse is the public view of a user; the password hash never leaves the server
type UserResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse builds the public view of user
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
