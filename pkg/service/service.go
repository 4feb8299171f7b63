// Package service implements the business operations per aggregate. The
// aggregates all share the same CRUD shape, so a single generic service
// carries the common operations; the per-aggregate types add their
// specialized filters on top.
package service

import (
	"context"
	"log/slog"

	"github.com/mbeller/hauskasse/pkg/paging"
	"github.com/mbeller/hauskasse/pkg/repository"
)

// Entity is satisfied by every domain entity through the embedded audit
// base.
type Entity interface {
	EntityID() uint
}

// Crud carries the operations shared by every aggregate service:
// E is the domain entity, C/U the create/update request DTOs and R the
// read DTO. The mapping functions come from pkg/mapper and are pure.
type Crud[E Entity, C, U, R any] struct {
	repo        repository.Repository[E]
	logger      *slog.Logger
	newEntity   func(*C) *E
	applyUpdate func(*E, *U)
	toRead      func(*E) *R
}

func newCrud[E Entity, C, U, R any](
	name string,
	repo repository.Repository[E],
	logger *slog.Logger,
	newEntity func(*C) *E,
	applyUpdate func(*E, *U),
	toRead func(*E) *R,
) *Crud[E, C, U, R] {
	return &Crud[E, C, U, R]{
		repo:        repo,
		logger:      logger.With("service", name),
		newEntity:   newEntity,
		applyUpdate: applyUpdate,
		toRead:      toRead,
	}
}

// Create persists a new entity built from the request and returns its
// read DTO, re-read so server-assigned fields and display names are
// resolved.
func (s *Crud[E, C, U, R]) Create(ctx context.Context, create *C) (*R, error) {
	entity := s.newEntity(create)
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("create failed", "error", err)
		return nil, err
	}
	return s.Get(ctx, (*entity).EntityID())
}

// Update merges the permitted fields of the request into the stored
// entity and returns the updated read DTO. A missing id surfaces as
// domain.ErrNotFound.
func (s *Crud[E, C, U, R]) Update(ctx context.Context, id uint, update *U) (*R, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.applyUpdate(entity, update)
	if err := s.repo.Update(ctx, entity); err != nil {
		s.logger.Error("update failed", "id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

// SoftDelete deactivates the entity. It reports whether the id existed.
func (s *Crud[E, C, U, R]) SoftDelete(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("soft delete failed", "id", id, "error", err)
	}
	return found, err
}

// HardDelete removes the entity permanently. It reports whether the id
// existed.
func (s *Crud[E, C, U, R]) HardDelete(ctx context.Context, id uint) (bool, error) {
	found, err := s.repo.HardDelete(ctx, id)
	if err != nil {
		s.logger.Error("hard delete failed", "id", id, "error", err)
	}
	return found, err
}

// Get returns the read DTO for one entity, or domain.ErrNotFound.
func (s *Crud[E, C, U, R]) Get(ctx context.Context, id uint) (*R, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toRead(entity), nil
}

// List returns one page of read DTOs wrapped in the paging envelope.
// Soft-deleted entities are excluded unless the options say otherwise.
func (s *Crud[E, C, U, R]) List(
	ctx context.Context,
	opts repository.ListOptions,
) (*paging.Page[R], error) {
	entities, total, err := s.repo.List(ctx, opts)
	if err != nil {
		s.logger.Error("list failed", "error", err)
		return nil, err
	}
	return s.page(entities, total, opts), nil
}

// listBy backs the aggregate-specific filters; it pages a predicate over
// the same entity set and returns the same DTO shape as List.
func (s *Crud[E, C, U, R]) listBy(
	ctx context.Context,
	opts repository.ListOptions,
	query any,
	args ...any,
) (*paging.Page[R], error) {
	entities, total, err := s.repo.ListBy(ctx, opts, query, args...)
	if err != nil {
		s.logger.Error("filtered list failed", "error", err)
		return nil, err
	}
	return s.page(entities, total, opts), nil
}

func (s *Crud[E, C, U, R]) page(
	entities []E,
	total int64,
	opts repository.ListOptions,
) *paging.Page[R] {
	page := paging.New(entities, total, opts.Paging)
	return paging.Map(page, func(e E) R { return *s.toRead(&e) })
}
