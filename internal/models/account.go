package models

import (
	"time"
)

// Account holds the currency balance of a user
type Account struct {
	// UserID is the Discord user ID owning the balance
	UserID string `gorm:"primaryKey"`

	// Balance is the amount of pearkies held
	Balance int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of gorm naming strategy
func (Account) TableName() string {
	return "currency"
}
