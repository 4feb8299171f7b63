package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRead is the caller-visible projection of a transaction.
type TransactionRead struct {
	ID                uint            `json:"id"`
	AccountID         uint            `json:"account_id"`
	AccountName       string          `json:"account_name,omitempty"`
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	CategoryConfirmed bool            `json:"category_confirmed"`
	IsActive          bool            `json:"is_active"`
	Note              string          `json:"note,omitempty"`
	CreatedDate       time.Time       `json:"created_date"`
	LastUpdatedDate   time.Time       `json:"last_updated_date"`
}

// TransactionCreate is the request body for creating a transaction.
type TransactionCreate struct {
	AccountID         uint            `json:"account_id" validate:"required"`
	Date              time.Time       `json:"date" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description" validate:"omitempty,max=1024"`
	Category          string          `json:"category" validate:"omitempty,max=255"`
	CategoryConfirmed bool            `json:"category_confirmed"`
	Note              string          `json:"note" validate:"omitempty,max=1024"`
}

// TransactionUpdate is the request body for updating a transaction.
type TransactionUpdate struct {
	AccountID         *uint            `json:"account_id"`
	Date              *time.Time       `json:"date"`
	Amount            *decimal.Decimal `json:"amount"`
	Description       *string          `json:"description" validate:"omitempty,max=1024"`
	Category          *string          `json:"category" validate:"omitempty,max=255"`
	CategoryConfirmed *bool            `json:"category_confirmed"`
	Note              *string          `json:"note" validate:"omitempty,max=1024"`
}
