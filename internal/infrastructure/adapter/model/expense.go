package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents the database model for expenses.
// Deleting the owning user removes its expenses through the foreign key.
type Expense struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    uint64          `gorm:"not null;index:idx_expenses_user_date,priority:1"`
	Title     string          `gorm:"size:255;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category  string          `gorm:"size:50;not null;default:Other"`
	Date      time.Time       `gorm:"type:date;not null;index:idx_expenses_user_date,priority:2"`
	Notes     *string         `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
