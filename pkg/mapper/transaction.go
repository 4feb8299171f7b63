package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewTransaction builds a fresh transaction entity from a create request.
func NewTransaction(c *dto.TransactionCreate) *domain.Transaction {
	return &domain.Transaction{
		Audit:             domain.Audit{IsActive: true, Note: c.Note},
		AccountID:         c.AccountID,
		Date:              c.Date,
		Amount:            c.Amount,
		Description:       c.Description,
		Category:          c.Category,
		CategoryConfirmed: c.CategoryConfirmed,
	}
}

// ApplyTransactionUpdate merges the permitted fields of an update request
// into an existing transaction.
func ApplyTransactionUpdate(t *domain.Transaction, u *dto.TransactionUpdate) {
	if u.AccountID != nil {
		t.AccountID = *u.AccountID
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.CategoryConfirmed != nil {
		t.CategoryConfirmed = *u.CategoryConfirmed
	}
	if u.Note != nil {
		t.Note = *u.Note
	}
}

// TransactionToRead projects a transaction to its read DTO.
func TransactionToRead(t *domain.Transaction) *dto.TransactionRead {
	r := &dto.TransactionRead{
		ID:                t.ID,
		AccountID:         t.AccountID,
		Date:              t.Date,
		Amount:            t.Amount,
		Description:       t.Description,
		Category:          t.Category,
		CategoryConfirmed: t.CategoryConfirmed,
		IsActive:          t.IsActive,
		Note:              t.Note,
		CreatedDate:       t.CreatedDate,
		LastUpdatedDate:   t.LastUpdatedDate,
	}
	if t.Account != nil {
		r.AccountName = t.Account.Name
	}
	return r
}
