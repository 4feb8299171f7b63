// Package dto defines the request and response shapes exchanged with
// callers. Create DTOs carry only client-settable fields; Update DTOs use
// pointer fields so absent and zero values can be told apart; Read DTOs
// are the externally visible projection of an entity, including
// denormalized display names resolved from loaded relations.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountRead is the caller-visible projection of an account.
type AccountRead struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Iban            string    `json:"iban"`
	Bic             string    `json:"bic"`
	CurrencyID      uint      `json:"currency_id"`
	CurrencyCode    string    `json:"currency_code,omitempty"`
	BankID          uint      `json:"bank_id"`
	BankName        string    `json:"bank_name,omitempty"`
	IsActive        bool      `json:"is_active"`
	Note            string    `json:"note,omitempty"`
	CreatedDate     time.Time `json:"created_date"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

// AccountCreate is the request body for creating an account.
type AccountCreate struct {
	Name       string `json:"name" validate:"required,max=255"`
	Iban       string `json:"iban" validate:"omitempty,max=34"`
	Bic        string `json:"bic" validate:"omitempty,max=11"`
	CurrencyID uint   `json:"currency_id" validate:"required"`
	BankID     uint   `json:"bank_id" validate:"required"`
	Note       string `json:"note" validate:"omitempty,max=1024"`
}

// AccountUpdate is the request body for updating an account.
type AccountUpdate struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Iban       *string `json:"iban" validate:"omitempty,max=34"`
	Bic        *string `json:"bic" validate:"omitempty,max=11"`
	CurrencyID *uint   `json:"currency_id"`
	BankID     *uint   `json:"bank_id"`
	Note       *string `json:"note" validate:"omitempty,max=1024"`
}

// BalanceRead is the caller-visible projection of a balance snapshot.
type BalanceRead struct {
	ID              uint            `json:"id"`
	AccountID       uint            `json:"account_id"`
	AccountName     string          `json:"account_name,omitempty"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	IsActive        bool            `json:"is_active"`
	Note            string          `json:"note,omitempty"`
	CreatedDate     time.Time       `json:"created_date"`
	LastUpdatedDate time.Time       `json:"last_updated_date"`
}

// BalanceCreate is the request body for recording a balance snapshot.
type BalanceCreate struct {
	AccountID uint            `json:"account_id" validate:"required"`
	Date      time.Time       `json:"date" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note" validate:"omitempty,max=1024"`
}

// BalanceUpdate is the request body for updating a balance snapshot.
type BalanceUpdate struct {
	AccountID *uint            `json:"account_id"`
	Date      *time.Time       `json:"date"`
	Amount    *decimal.Decimal `json:"amount"`
	Note      *string          `json:"note" validate:"omitempty,max=1024"`
}
