// Package repository implements the persistence contracts on top of GORM
// and Postgres. One generic implementation serves every aggregate; the
// relations to preload for denormalized display names are configured per
// repository at construction time.
package repository

import (
	"context"
	"time"

	"github.com/mbeller/hauskasse/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRepository[E any] struct {
	db       *gorm.DB
	preloads []string
}

// New builds a repository for E. The preloads name the relations loaded
// on reads so the mapping layer can resolve foreign keys into display
// names.
func New[E any](db *gorm.DB, preloads ...string) repository.Repository[E] {
	return &gormRepository[E]{db: db, preloads: preloads}
}

func (r *gormRepository[E]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

func (r *gormRepository[E]) Create(ctx context.Context, entity *E) error {
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(entity).Error)
}

func (r *gormRepository[E]) Get(ctx context.Context, id uint) (*E, error) {
	var entity E
	err := r.withPreloads(r.db.WithContext(ctx)).First(&entity, "id = ?", id).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return &entity, nil
}

// Update writes the full entity state. Loaded relations are omitted so a
// save never cascades into referenced rows.
func (r *gormRepository[E]) Update(ctx context.Context, entity *E) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error,
	)
}

func (r *gormRepository[E]) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(new(E)).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":         false,
			"last_updated_date": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *gormRepository[E]) HardDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(E), "id = ?", id)
	if res.Error != nil {
		return false, MapGormErrorToDomain(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// conditions builds the shared predicate of List/ListBy. Count and Find
// each get a fresh chain so the count never inherits paging clauses.
func (r *gormRepository[E]) conditions(
	ctx context.Context,
	opts repository.ListOptions,
	query any,
	args ...any,
) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(new(E))
	if !opts.IncludeInactive {
		tx = tx.Where("is_active = ?", true)
	}
	if query != nil {
		tx = tx.Where(query, args...)
	}
	return tx
}

func (r *gormRepository[E]) List(
	ctx context.Context,
	opts repository.ListOptions,
) ([]E, int64, error) {
	return r.ListBy(ctx, opts, nil)
}

func (r *gormRepository[E]) ListBy(
	ctx context.Context,
	opts repository.ListOptions,
	query any,
	args ...any,
) ([]E, int64, error) {
	var total int64
	if err := r.conditions(ctx, opts, query, args...).Count(&total).Error; err != nil {
		return nil, 0, MapGormErrorToDomain(err)
	}

	p := opts.Paging.Normalize()
	var entities []E
	err := r.withPreloads(r.conditions(ctx, opts, query, args...)).
		Order("id").
		Offset(p.Skip()).
		Limit(p.Limit()).
		Find(&entities).Error
	if err != nil {
		return nil, 0, MapGormErrorToDomain(err)
	}
	return entities, total, nil
}

// WithTransaction binds a repository to one database transaction for the
// duration of fn.
func (r *gormRepository[E]) WithTransaction(
	ctx context.Context,
	fn func(tx repository.Repository[E]) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository[E]{db: tx, preloads: r.preloads})
	})
	return MapGormErrorToDomain(err)
}

func (r *gormRepository[E]) FindOneBy(
	ctx context.Context,
	query any,
	args ...any,
) (*E, error) {
	var entity E
	err := r.withPreloads(r.db.WithContext(ctx)).
		Where(query, args...).
		First(&entity).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return &entity, nil
}
