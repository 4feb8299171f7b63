// Package mocks holds hand-written testify mocks shared by the service
// and handler tests.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/mbeller/hauskasse/pkg/repository"
)

// MockRepository is a testify mock of repository.Repository[E].
type MockRepository[E any] struct {
	mock.Mock
}

// NewMockRepository returns a mock whose expectations are asserted on
// test cleanup.
func NewMockRepository[E any](t *testing.T) *MockRepository[E] {
	m := &MockRepository[E]{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepository[E]) Create(ctx context.Context, entity *E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[E]) Get(ctx context.Context, id uint) (*E, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) Update(ctx context.Context, entity *E) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[E]) SoftDelete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[E]) HardDelete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[E]) List(ctx context.Context, opts repository.ListOptions) ([]E, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]E), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository[E]) ListBy(ctx context.Context, opts repository.ListOptions, query any, qargs ...any) ([]E, int64, error) {
	callArgs := append([]any{ctx, opts, query}, qargs...)
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]E), args.Get(1).(int64), args.Error(2)
}

// WithTransaction runs fn against the mock itself; transactional
// semantics (rollback on error) are covered by the GORM repository tests.
func (m *MockRepository[E]) WithTransaction(ctx context.Context, fn func(tx repository.Repository[E]) error) error {
	return fn(m)
}

func (m *MockRepository[E]) FindOneBy(ctx context.Context, query any, qargs ...any) (*E, error) {
	callArgs := append([]any{ctx, query}, qargs...)
	args := m.Called(callArgs...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}
