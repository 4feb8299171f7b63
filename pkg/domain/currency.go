package domain

import "github.com/shopspring/decimal"

// Currency is a reference record with the exchange rate used to express
// amounts in euros. ExchangeRate is the number of euros one unit of the
// currency is worth.
type Currency struct {
	Audit
	Name         string          `gorm:"size:255;not null"`
	IsoCode      string          `gorm:"size:3;uniqueIndex"`
	Symbol       string          `gorm:"size:8"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(18,6)"`
}
