package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewCurrency builds a fresh currency entity from a create request.
func NewCurrency(c *dto.CurrencyCreate) *domain.Currency {
	return &domain.Currency{
		Audit:        domain.Audit{IsActive: true, Note: c.Note},
		Name:         c.Name,
		IsoCode:      c.IsoCode,
		Symbol:       c.Symbol,
		ExchangeRate: c.ExchangeRate,
	}
}

// ApplyCurrencyUpdate merges the permitted fields of an update request
// into an existing currency.
func ApplyCurrencyUpdate(c *domain.Currency, u *dto.CurrencyUpdate) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.IsoCode != nil {
		c.IsoCode = *u.IsoCode
	}
	if u.Symbol != nil {
		c.Symbol = *u.Symbol
	}
	if u.ExchangeRate != nil {
		c.ExchangeRate = *u.ExchangeRate
	}
	if u.Note != nil {
		c.Note = *u.Note
	}
}

// CurrencyToRead projects a currency to its read DTO.
func CurrencyToRead(c *domain.Currency) *dto.CurrencyRead {
	return &dto.CurrencyRead{
		ID:              c.ID,
		Name:            c.Name,
		IsoCode:         c.IsoCode,
		Symbol:          c.Symbol,
		ExchangeRate:    c.ExchangeRate,
		IsActive:        c.IsActive,
		Note:            c.Note,
		CreatedDate:     c.CreatedDate,
		LastUpdatedDate: c.LastUpdatedDate,
	}
}
