package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRead is the caller-visible projection of a salary payment.
// AmountEur is derived from the currency's stored exchange rate at read
// time.
type SalaryRead struct {
	ID              uint            `json:"id"`
	UserID          uint            `json:"user_id"`
	Username        string          `json:"username,omitempty"`
	CurrencyID      uint            `json:"currency_id"`
	CurrencyCode    string          `json:"currency_code,omitempty"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	AmountEur       decimal.Decimal `json:"amount_eur"`
	IsActive        bool            `json:"is_active"`
	Note            string          `json:"note,omitempty"`
	CreatedDate     time.Time       `json:"created_date"`
	LastUpdatedDate time.Time       `json:"last_updated_date"`
}

// SalaryCreate is the request body for recording a salary payment.
type SalaryCreate struct {
	UserID     uint            `json:"user_id" validate:"required"`
	CurrencyID uint            `json:"currency_id" validate:"required"`
	Date       time.Time       `json:"date" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note" validate:"omitempty,max=1024"`
}

// SalaryUpdate is the request body for updating a salary payment.
type SalaryUpdate struct {
	UserID     *uint            `json:"user_id"`
	CurrencyID *uint            `json:"currency_id"`
	Date       *time.Time       `json:"date"`
	Amount     *decimal.Decimal `json:"amount"`
	Note       *string          `json:"note" validate:"omitempty,max=1024"`
}
