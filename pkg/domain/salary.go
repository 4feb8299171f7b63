package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is a salary payment received by a household member, recorded in
// its original currency. The euro value is derived at read time from the
// currency's stored exchange rate and never persisted.
type Salary struct {
	Audit
	UserID     uint `gorm:"not null;index"`
	User       *ServiceUser
	CurrencyID uint `gorm:"not null"`
	Currency   *Currency
	Date       time.Time       `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2)"`
}

// AmountEur converts the salary amount to euros using the loaded
// currency's exchange rate. It returns zero when the relation is not
// loaded.
func (s *Salary) AmountEur() decimal.Decimal {
	if s.Currency == nil {
		return decimal.Zero
	}
	return s.Amount.Mul(s.Currency.ExchangeRate).Round(2)
}
