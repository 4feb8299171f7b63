package mapper

import (
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// NewServiceUser builds a fresh service user entity. The password hash is
// supplied by the caller; the mapper never sees plain passwords.
func NewServiceUser(c *dto.ServiceUserCreate, passwordHash string) *domain.ServiceUser {
	return &domain.ServiceUser{
		Audit:        domain.Audit{IsActive: true, Note: c.Note},
		Username:     c.Username,
		Email:        c.Email,
		PasswordHash: passwordHash,
	}
}

// ApplyServiceUserUpdate merges the permitted fields of an update request
// into an existing service user. A nil passwordHash leaves the stored
// hash untouched.
func ApplyServiceUserUpdate(su *domain.ServiceUser, u *dto.ServiceUserUpdate, passwordHash *string) {
	if u.Username != nil {
		su.Username = *u.Username
	}
	if u.Email != nil {
		su.Email = *u.Email
	}
	if passwordHash != nil {
		su.PasswordHash = *passwordHash
	}
	if u.Note != nil {
		su.Note = *u.Note
	}
}

// ServiceUserToRead projects a service user to its read DTO, without the
// password hash.
func ServiceUserToRead(su *domain.ServiceUser) *dto.ServiceUserRead {
	return &dto.ServiceUserRead{
		ID:              su.ID,
		Username:        su.Username,
		Email:           su.Email,
		IsActive:        su.IsActive,
		Note:            su.Note,
		CreatedDate:     su.CreatedDate,
		LastUpdatedDate: su.LastUpdatedDate,
	}
}
