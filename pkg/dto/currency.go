package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRead is the caller-visible projection of a currency.
type CurrencyRead struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	IsoCode         string          `json:"iso_code"`
	Symbol          string          `json:"symbol"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	IsActive        bool            `json:"is_active"`
	Note            string          `json:"note,omitempty"`
	CreatedDate     time.Time       `json:"created_date"`
	LastUpdatedDate time.Time       `json:"last_updated_date"`
}

// CurrencyCreate is the request body for registering a currency.
type CurrencyCreate struct {
	Name         string          `json:"name" validate:"required,max=255"`
	IsoCode      string          `json:"iso_code" validate:"required,len=3,uppercase"`
	Symbol       string          `json:"symbol" validate:"omitempty,max=8"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Note         string          `json:"note" validate:"omitempty,max=1024"`
}

// CurrencyUpdate is the request body for updating a currency.
type CurrencyUpdate struct {
	Name         *string          `json:"name" validate:"omitempty,max=255"`
	IsoCode      *string          `json:"iso_code" validate:"omitempty,len=3,uppercase"`
	Symbol       *string          `json:"symbol" validate:"omitempty,max=8"`
	ExchangeRate *decimal.Decimal `json:"exchange_rate"`
	Note         *string          `json:"note" validate:"omitempty,max=1024"`
}
