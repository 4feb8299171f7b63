package dto

import "time"

// SupplierRead is the caller-visible projection of a supplier.
type SupplierRead struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	CountryID       uint      `json:"country_id"`
	CountryName     string    `json:"country_name,omitempty"`
	IsActive        bool      `json:"is_active"`
	Note            string    `json:"note,omitempty"`
	CreatedDate     time.Time `json:"created_date"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

// SupplierCreate is the request body for creating a supplier.
type SupplierCreate struct {
	Name      string `json:"name" validate:"required,max=255"`
	Category  string `json:"category" validate:"omitempty,max=255"`
	CountryID uint   `json:"country_id" validate:"required"`
	Note      string `json:"note" validate:"omitempty,max=1024"`
}

// SupplierUpdate is the request body for updating a supplier.
type SupplierUpdate struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Category  *string `json:"category" validate:"omitempty,max=255"`
	CountryID *uint   `json:"country_id"`
	Note      *string `json:"note" validate:"omitempty,max=1024"`
}
