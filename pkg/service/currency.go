package service

import (
	"log/slog"

	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/mapper"
	"github.com/mbeller/hauskasse/pkg/repository"
)

// CurrencyService manages currencies and their exchange rates.
type CurrencyService struct {
	*Crud[domain.Currency, dto.CurrencyCreate, dto.CurrencyUpdate, dto.CurrencyRead]
}

func NewCurrencyService(
	repo repository.Repository[domain.Currency],
	logger *slog.Logger,
) *CurrencyService {
	return &CurrencyService{newCrud(
		"currency", repo, logger,
		mapper.NewCurrency, mapper.ApplyCurrencyUpdate, mapper.CurrencyToRead,
	)}
}

// SupplierService manages suppliers.
type SupplierService struct {
	*Crud[domain.Supplier, dto.SupplierCreate, dto.SupplierUpdate, dto.SupplierRead]
}

func NewSupplierService(
	repo repository.Repository[domain.Supplier],
	logger *slog.Logger,
) *SupplierService {
	return &SupplierService{newCrud(
		"supplier", repo, logger,
		mapper.NewSupplier, mapper.ApplySupplierUpdate, mapper.SupplierToRead,
	)}
}
