package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewBank builds a fresh bank entity from a create request.
func NewBank(c *dto.BankCreate) *domain.Bank {
	return &domain.Bank{
		Audit:     domain.Audit{IsActive: true, Note: c.Note},
		Name:      c.Name,
		Bic:       c.Bic,
		CountryID: c.CountryID,
	}
}

// ApplyBankUpdate merges the permitted fields of an update request into
// an existing bank.
func ApplyBankUpdate(b *domain.Bank, u *dto.BankUpdate) {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Bic != nil {
		b.Bic = *u.Bic
	}
	if u.CountryID != nil {
		b.CountryID = *u.CountryID
	}
	if u.Note != nil {
		b.Note = *u.Note
	}
}

// BankToRead projects a bank to its read DTO.
func BankToRead(b *domain.Bank) *dto.BankRead {
	r := &dto.BankRead{
		ID:              b.ID,
		Name:            b.Name,
		Bic:             b.Bic,
		CountryID:       b.CountryID,
		IsActive:        b.IsActive,
		Note:            b.Note,
		CreatedDate:     b.CreatedDate,
		LastUpdatedDate: b.LastUpdatedDate,
	}
	if b.Country != nil {
		r.CountryName = b.Country.Name
	}
	return r
}

// NewCountry builds a fresh country entity from a create request.
func NewCountry(c *dto.CountryCreate) *domain.Country {
	return &domain.Country{
		Audit:   domain.Audit{IsActive: true, Note: c.Note},
		Name:    c.Name,
		IsoCode: c.IsoCode,
	}
}

// ApplyCountryUpdate merges the permitted fields of an update request
// into an existing country.
func ApplyCountryUpdate(c *domain.Country, u *dto.CountryUpdate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.IsoCode != nil {
		c.IsoCode = *u.IsoCode
	}
	if u.Note != nil {
		c.Note = *u.Note
	}
}

// CountryToRead projects a country to its read DTO.
func CountryToRead(c *domain.Country) *dto.CountryRead {
	return &dto.CountryRead{
		ID:              c.ID,
		Name:            c.Name,
		IsoCode:         c.IsoCode,
		IsActive:        c.IsActive,
		Note:            c.Note,
		CreatedDate:     c.CreatedDate,
		LastUpdatedDate: c.LastUpdatedDate,
	}
}
