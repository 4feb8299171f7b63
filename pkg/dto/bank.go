package dto

import "time"

// BankRead is the caller-visible projection of a bank.
type BankRead struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Bic             string    `json:"bic"`
	CountryID       uint      `json:"country_id"`
	CountryName     string    `json:"country_name,omitempty"`
	IsActive        bool      `json:"is_active"`
	Note            string    `json:"note,omitempty"`
	CreatedDate     time.Time `json:"created_date"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

// BankCreate is the request body for creating a bank.
type BankCreate struct {
	Name      string `json:"name" validate:"required,max=255"`
	Bic       string `json:"bic" validate:"omitempty,max=11"`
	CountryID uint   `json:"country_id" validate:"required"`
	Note      string `json:"note" validate:"omitempty,max=1024"`
}

// BankUpdate is the request body for updating a bank.
type BankUpdate struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Bic       *string `json:"bic" validate:"omitempty,max=11"`
	CountryID *uint   `json:"country_id"`
	Note      *string `json:"note" validate:"omitempty,max=1024"`
}

// CountryRead is the caller-visible projection of a country.
type CountryRead struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	IsoCode         string    `json:"iso_code"`
	IsActive        bool      `json:"is_active"`
	Note            string    `json:"note,omitempty"`
	CreatedDate     time.Time `json:"created_date"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

// CountryCreate is the request body for creating a country.
type CountryCreate struct {
	Name    string `json:"name" validate:"required,max=255"`
	IsoCode string `json:"iso_code" validate:"required,len=2,uppercase"`
	Note    string `json:"note" validate:"omitempty,max=1024"`
}

// CountryUpdate is the request body for updating a country.
type CountryUpdate struct {
	Name    *string `json:"name" validate:"omitempty,max=255"`
	IsoCode *string `json:"iso_code" validate:"omitempty,len=2,uppercase"`
	Note    *string `json:"note" validate:"omitempty,max=1024"`
}
