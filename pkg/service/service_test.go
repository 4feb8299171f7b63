package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mbeller/hauskasse/internal/fixtures/mocks"
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/paging"
	"github.com/mbeller/hauskasse/pkg/repository"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCountryService_Create_ReturnsReRead(t *testing.T) {
	repo := mocks.NewMockRepository[domain.Country](t)
	svc := NewCountryService(repo, newTestLogger())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Country")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Country).ID = 7
		}).Return(nil)
	stored := &domain.Country{
		Audit:   domain.Audit{ID: 7, IsActive: true},
		Name:    "Switzerland",
		IsoCode: "CH",
	}
	repo.On("Get", mock.Anything, uint(7)).Return(stored, nil)

	got, err := svc.Create(context.Background(), &dto.CountryCreate{Name: "Switzerland", IsoCode: "CH"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "CH", got.IsoCode)
	assert.True(t, got.IsActive)
}

func TestCountryService_Update_MergesAndReReads(t *testing.T) {
	repo := mocks.NewMockRepository[domain.Country](t)
	svc := NewCountryService(repo, newTestLogger())

	stored := &domain.Country{
		Audit:   domain.Audit{ID: 3, IsActive: true},
		Name:    "Germany",
		IsoCode: "DE",
	}
	repo.On("Get", mock.Anything, uint(3)).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Country) bool {
		return c.ID == 3 && c.Name == "Deutschland" && c.IsoCode == "DE"
	})).Return(nil)

	name := "Deutschland"
	got, err := svc.Update(context.Background(), 3, &dto.CountryUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Deutschland", got.Name)
}

func TestCountryService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockRepository[domain.Country](t)
	svc := NewCountryService(repo, newTestLogger())

	repo.On("Get", mock.Anything, uint(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCountryService_SoftDelete_MissingRow(t *testing.T) {
	repo := mocks.NewMockRepository[domain.Country](t)
	svc := NewCountryService(repo, newTestLogger())

	repo.On("SoftDelete", mock.Anything, uint(99)).Return(false, nil)

	found, err := svc.SoftDelete(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCountryService_List_WrapsPage(t *testing.T) {
	repo := mocks.NewMockRepository[domain.Country](t)
	svc := NewCountryService(repo, newTestLogger())

	opts := repository.ListOptions{Paging: paging.Request{Page: 2, PageSize: 1}}
	repo.On("List", mock.Anything, opts).Return([]domain.Country{
		{Audit: domain.Audit{ID: 2, IsActive: true}, Name: "France", IsoCode: "FR"},
	}, int64(3), nil)

	page, err := svc.List(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrevious)
	assert.True(t, page.HasNext)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "France", page.Items[0].Name)
}

func TestAccountService_GetByIban(t *testing.T) {
	repo := mocks.NewMockRepository[domain.Account](t)
	svc := NewAccountService(repo, newTestLogger())

	stored := &domain.Account{
		Audit: domain.Audit{ID: 5, IsActive: true},
		Name:  "Checking",
		Iban:  "CH9300762011623852957",
	}
	repo.On("FindOneBy", mock.Anything, "ibannumber = ?", "CH9300762011623852957").
		Return(stored, nil)

	got, err := svc.GetByIban(context.Background(), "CH9300762011623852957")
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, "CH9300762011623852957", got.Iban)
}

func TestTransactionService_ListByYear_HalfOpenRange(t *testing.T) {
	repo := mocks.NewMockRepository[domain.Transaction](t)
	svc := NewTransactionService(repo, newTestLogger())

	opts := repository.ListOptions{}
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo.On("ListBy", mock.Anything, opts, "date >= ? AND date < ?", from, to).
		Return([]domain.Transaction{}, int64(0), nil)

	page, err := svc.ListByYear(context.Background(), 2024, opts)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalCount)
}
