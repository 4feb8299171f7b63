package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewSupplier builds a fresh supplier entity from a create request.
func NewSupplier(c *dto.SupplierCreate) *domain.Supplier {
	return &domain.Supplier{
		Audit:     domain.Audit{IsActive: true, Note: c.Note},
		Name:      c.Name,
		Category:  c.Category,
		CountryID: c.CountryID,
	}
}

// ApplySupplierUpdate merges the permitted fields of an update request
// into an existing supplier.
func ApplySupplierUpdate(s *domain.Supplier, u *dto.SupplierUpdate) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.CountryID != nil {
		s.CountryID = *u.CountryID
	}
	if u.Note != nil {
		s.Note = *u.Note
	}
}

// SupplierToRead projects a supplier to its read DTO.
func SupplierToRead(s *domain.Supplier) *dto.SupplierRead {
	r := &dto.SupplierRead{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		CountryID:       s.CountryID,
		IsActive:        s.IsActive,
		Note:            s.Note,
		CreatedDate:     s.CreatedDate,
		LastUpdatedDate: s.LastUpdatedDate,
	}
	if s.Country != nil {
		r.CountryName = s.Country.Name
	}
	return r
}
