package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account tracked by the household ledger.
//
// Iban maps onto the legacy "ibannumber" column; the storage name predates
// this service and is kept for compatibility with existing data.
type Account struct {
	Audit
	Name       string `gorm:"size:255;not null"`
	Iban       string `gorm:"column:ibannumber;size:34"`
	Bic        string `gorm:"size:11"`
	CurrencyID uint   `gorm:"not null"`
	Currency   *Currency
	BankID     uint `gorm:"not null"`
	Bank       *Bank
}

// Balance is a point-in-time snapshot of an account's balance.
type Balance struct {
	Audit
	AccountID uint `gorm:"not null;index"`
	Account   *Account
	Date      time.Time       `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)"`
}
