package model

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// ToUserEntity converts a database user to its domain form
func ToUserEntity(m *User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromUserEntity converts a domain user to its database form
func FromUserEntity(u *entity.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// ToExpenseEntity converts a database expense to its domain form
func ToExpenseEntity(m *Expense) *entity.Expense {
	return &entity.Expense{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Amount:    m.Amount.Round(entity.MaxDecimalPlaces),
		Category:  entity.Category(m.Category),
		Date:      entity.DateOf(m.Date),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromExpenseEntity converts a domain expense to its database form
func FromExpenseEntity(e *entity.Expense) *Expense {
	return &Expense{
		ID:        e.ID,
		UserID:    e.UserID,
		Title:     e.Title,
		Amount:    e.Amount.Round(entity.MaxDecimalPlaces),
		Category:  string(e.Category),
		Date:      DateColumn(e.Date),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// DateColumn stores a calendar date as UTC midnight
func DateColumn(d entity.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
