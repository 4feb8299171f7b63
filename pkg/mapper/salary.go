package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewSalary builds a fresh salary entity from a create request.
func NewSalary(c *dto.SalaryCreate) *domain.Salary {
	return &domain.Salary{
		Audit:      domain.Audit{IsActive: true, Note: c.Note},
		UserID:     c.UserID,
		CurrencyID: c.CurrencyID,
		Date:       c.Date,
		Amount:     c.Amount,
	}
}

// ApplySalaryUpdate merges the permitted fields of an update request into
// an existing salary.
func ApplySalaryUpdate(s *domain.Salary, u *dto.SalaryUpdate) {
	if u.UserID != nil {
		s.UserID = *u.UserID
	}
	if u.CurrencyID != nil {
		s.CurrencyID = *u.CurrencyID
	}
	if u.Date != nil {
		s.Date = *u.Date
	}
	if u.Amount != nil {
		s.Amount = *u.Amount
	}
	if u.Note != nil {
		s.Note = *u.Note
	}
}

// SalaryToRead projects a salary to its read DTO. AmountEur is derived
// from the loaded currency's exchange rate and zero when the relation is
// not loaded.
func SalaryToRead(s *domain.Salary) *dto.SalaryRead {
	r := &dto.SalaryRead{
		ID:              s.ID,
		UserID:          s.UserID,
		CurrencyID:      s.CurrencyID,
		Date:            s.Date,
		Amount:          s.Amount,
		AmountEur:       s.AmountEur(),
		IsActive:        s.IsActive,
		Note:            s.Note,
		CreatedDate:     s.CreatedDate,
		LastUpdatedDate: s.LastUpdatedDate,
	}
	if s.User != nil {
		r.Username = s.User.Username
	}
	if s.Currency != nil {
		r.CurrencyCode = s.Currency.IsoCode
	}
	return r
}
