package service

import (
	"context"
	"log/slog"

	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/mapper"
	"github.com/mbeller/hauskasse/pkg/paging"
	"github.com/mbeller/hauskasse/pkg/repository"
)

// BankService manages banks.
type BankService struct {
	*Crud[domain.Bank, dto.BankCreate, dto.BankUpdate, dto.BankRead]
}

func NewBankService(
	repo repository.Repository[domain.Bank],
	logger *slog.Logger,
) *BankService {
	return &BankService{newCrud(
		"bank", repo, logger,
		mapper.NewBank, mapper.ApplyBankUpdate, mapper.BankToRead,
	)}
}

// ListByCountry pages the banks registered in one country.
func (s *BankService) ListByCountry(
	ctx context.Context,
	countryID uint,
	opts repository.ListOptions,
) (*paging.Page[dto.BankRead], error) {
	return s.listBy(ctx, opts, "country_id = ?", countryID)
}

// CountryService manages countries.
type CountryService struct {
	*Crud[domain.Country, dto.CountryCreate, dto.CountryUpdate, dto.CountryRead]
}

func NewCountryService(
	repo repository.Repository[domain.Country],
	logger *slog.Logger,
) *CountryService {
	return &CountryService{newCrud(
		"country", repo, logger,
		mapper.NewCountry, mapper.ApplyCountryUpdate, mapper.CountryToRead,
	)}
}
