package dto

import "time"

// ServiceUserRead is the caller-visible projection of a service user.
// The password hash is deliberately absent.
type ServiceUserRead struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	IsActive        bool      `json:"is_active"`
	Note            string    `json:"note,omitempty"`
	CreatedDate     time.Time `json:"created_date"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

// ServiceUserCreate is the request body for creating a service user. The
// plain password is hashed by the service layer before anything is
// persisted.
type ServiceUserCreate struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Note     string `json:"note" validate:"omitempty,max=1024"`
}

// ServiceUserUpdate is the request body for updating a service user.
// Passwords are changed through this DTO as well; identity and audit
// fields are never client-settable.
type ServiceUserUpdate struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Note     *string `json:"note" validate:"omitempty,max=1024"`
}
