package repository

import (
	"errors"

	"github.com/mbeller/hauskasse/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors so database
// concerns stay inside the infrastructure layer. Not-found and constraint
// violations get their domain classes; anything else (connectivity,
// timeouts) is an infrastructure failure and propagates untouched.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrConflict
	}
	return err
}
