package domain

import "time"

// Audit carries the fields shared by every Hauskasse entity: a surrogate
// key assigned by the database, creation and last-update timestamps, the
// active flag used for soft deletion, and an optional free-text note.
//
// CreatedDate is stamped exactly once on insert; LastUpdatedDate is
// refreshed by the persistence layer on every mutation. IsActive moves
// true -> false on soft delete and never back.
type Audit struct {
	ID              uint      `gorm:"primaryKey"`
	CreatedDate     time.Time `gorm:"autoCreateTime"`
	LastUpdatedDate time.Time `gorm:"autoUpdateTime"`
	IsActive        bool      `gorm:"not null;default:true"`
	Note            string    `gorm:"size:1024"`
}

// EntityID exposes the surrogate key through the shared audit base so
// generic code can read it without knowing the concrete entity type.
func (a Audit) EntityID() uint { return a.ID }
