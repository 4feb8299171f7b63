// Package mapper transcribes between request DTOs, domain entities and
// read DTOs. Every function is total and side-effect-free: nothing here
// touches persistence or mutates its source.
//
// Create mappings name exactly the fields a client may set. Server-owned
// fields follow fixed rules instead: the id stays zero for the database
// to assign, the active flag is forced on, and the timestamps are left
// for the persistence layer to stamp. Update mappings merge only non-nil
// mutable fields and never touch id, creation date or active flag.
package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewAccount builds a fresh account entity from a create request.
func NewAccount(c *dto.AccountCreate) *domain.Account {
	return &domain.Account{
		Audit:      domain.Audit{IsActive: true, Note: c.Note},
		Name:       c.Name,
		Iban:       c.Iban,
		Bic:        c.Bic,
		CurrencyID: c.CurrencyID,
		BankID:     c.BankID,
	}
}

// ApplyAccountUpdate merges the permitted fields of an update request
// into an existing account.
func ApplyAccountUpdate(a *domain.Account, u *dto.AccountUpdate) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Iban != nil {
		a.Iban = *u.Iban
	}
	if u.Bic != nil {
		a.Bic = *u.Bic
	}
	if u.CurrencyID != nil {
		a.CurrencyID = *u.CurrencyID
	}
	if u.BankID != nil {
		a.BankID = *u.BankID
	}
	if u.Note != nil {
		a.Note = *u.Note
	}
}

// AccountToRead projects an account to its read DTO. Display names are
// resolved from loaded relations and left empty otherwise.
func AccountToRead(a *domain.Account) *dto.AccountRead {
	r := &dto.AccountRead{
		ID:              a.ID,
		Name:            a.Name,
		Iban:            a.Iban,
		Bic:             a.Bic,
		CurrencyID:      a.CurrencyID,
		BankID:          a.BankID,
		IsActive:        a.IsActive,
		Note:            a.Note,
		CreatedDate:     a.CreatedDate,
		LastUpdatedDate: a.LastUpdatedDate,
	}
	if a.Currency != nil {
		r.CurrencyCode = a.Currency.IsoCode
	}
	if a.Bank != nil {
		r.BankName = a.Bank.Name
	}
	return r
}

// NewBalance builds a fresh balance entity from a create request.
func NewBalance(c *dto.BalanceCreate) *domain.Balance {
	return &domain.Balance{
		Audit:     domain.Audit{IsActive: true, Note: c.Note},
		AccountID: c.AccountID,
		Date:      c.Date,
		Amount:    c.Amount,
	}
}

// ApplyBalanceUpdate merges the permitted fields of an update request
// into an existing balance.
func ApplyBalanceUpdate(b *domain.Balance, u *dto.BalanceUpdate) {
	if u.AccountID != nil {
		b.AccountID = *u.AccountID
	}
	if u.Date != nil {
		b.Date = *u.Date
	}
	if u.Amount != nil {
		b.Amount = *u.Amount
	}
	if u.Note != nil {
		b.Note = *u.Note
	}
}

// BalanceToRead projects a balance to its read DTO.
func BalanceToRead(b *domain.Balance) *dto.BalanceRead {
	r := &dto.BalanceRead{
		ID:              b.ID,
		AccountID:       b.AccountID,
		Date:            b.Date,
		Amount:          b.Amount,
		IsActive:        b.IsActive,
		Note:            b.Note,
		CreatedDate:     b.CreatedDate,
		LastUpdatedDate: b.LastUpdatedDate,
	}
	if b.Account != nil {
		r.AccountName = b.Account.Name
	}
	return r
}
