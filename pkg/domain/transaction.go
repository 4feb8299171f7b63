package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single booking on an account. Category is a free-form
// label; CategoryConfirmed tells whether a person has confirmed an
// automatically assigned category.
type Transaction struct {
	Audit
	AccountID         uint `gorm:"not null;index"`
	Account           *Account
	Date              time.Time       `gorm:"not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(18,2)"`
	Description       string          `gorm:"size:1024"`
	Category          string          `gorm:"size:255"`
	CategoryConfirmed bool            `gorm:"not null;default:false"`
}
