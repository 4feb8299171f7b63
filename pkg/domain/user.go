package domain

// ServiceUser is a household member who can sign in to the service.
// PasswordHash is a bcrypt hash and never leaves the persistence and auth
// layers.
type ServiceUser struct {
	Audit
	Username     string `gorm:"uniqueIndex;not null;size:50"`
	Email        string `gorm:"size:255"`
	PasswordHash string `gorm:"not null;size:60"`
}
