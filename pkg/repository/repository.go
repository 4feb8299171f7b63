// Package repository defines the persistence contracts the service layer
// depends on. The per-aggregate service interfaces are structurally
// identical, so a single generic repository parameterized over the entity
// type replaces eleven hand-written ones; aggregate-specific reads are
// expressed as predicates through ListBy.
package repository

import (
	"context"

	"github.com/mbeller/hauskasse/pkg/paging"
)

// ListOptions carries the common parameters of every list operation.
// Soft-deleted rows are excluded unless IncludeInactive is set.
type ListOptions struct {
	Paging          paging.Request
	IncludeInactive bool
}

// Repository provides CRUD and paged query access for one entity type.
//
// Not-found on Get is reported as domain.ErrNotFound; SoftDelete and
// HardDelete report it as a false return instead, since a missing row is
// an expected outcome of deletion by id, not a fault.
type Repository[E any] interface {
	// Create inserts a new entity. The database assigns the identity and
	// stamps the audit timestamps on the passed entity.
	Create(ctx context.Context, entity *E) error

	// Get retrieves an entity by id, with configured relations loaded.
	// Soft-deleted entities are still retrievable by id.
	Get(ctx context.Context, id uint) (*E, error)

	// Update persists the full current state of an existing entity and
	// refreshes its last-updated timestamp.
	Update(ctx context.Context, entity *E) error

	// SoftDelete clears the active flag and refreshes the last-updated
	// timestamp. It reports whether a row with the id existed.
	SoftDelete(ctx context.Context, id uint) (bool, error)

	// HardDelete removes the row permanently. It reports whether a row
	// with the id existed.
	HardDelete(ctx context.Context, id uint) (bool, error)

	// List returns one page of entities plus the total count under the
	// active predicate.
	List(ctx context.Context, opts ListOptions) ([]E, int64, error)

	// ListBy is List restricted by an additional conditions clause
	// (GORM-style query and args).
	ListBy(ctx context.Context, opts ListOptions, query any, args ...any) ([]E, int64, error)

	// FindOneBy retrieves the first entity matching the conditions
	// clause, or domain.ErrNotFound.
	FindOneBy(ctx context.Context, query any, args ...any) (*E, error)

	// WithTransaction runs fn against a repository bound to one
	// transaction. The transaction commits when fn returns nil and rolls
	// back when it returns an error, so a multi-write mutation is applied
	// entirely or not at all.
	WithTransaction(ctx context.Context, fn func(tx Repository[E]) error) error
}
