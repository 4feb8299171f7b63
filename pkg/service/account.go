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

// AccountService manages bank accounts.
type AccountService struct {
	*Crud[domain.Account, dto.AccountCreate, dto.AccountUpdate, dto.AccountRead]
}

func NewAccountService(
	repo repository.Repository[domain.Account],
	logger *slog.Logger,
) *AccountService {
	return &AccountService{newCrud(
		"account", repo, logger,
		mapper.NewAccount, mapper.ApplyAccountUpdate, mapper.AccountToRead,
	)}
}

// GetByIban looks an account up by its IBAN. The predicate uses the
// legacy storage column name.
func (s *AccountService) GetByIban(ctx context.Context, iban string) (*dto.AccountRead, error) {
	entity, err := s.repo.FindOneBy(ctx, "ibannumber = ?", iban)
	if err != nil {
		return nil, err
	}
	return s.toRead(entity), nil
}

// BalanceService manages account balance snapshots.
type BalanceService struct {
	*Crud[domain.Balance, dto.BalanceCreate, dto.BalanceUpdate, dto.BalanceRead]
}

func NewBalanceService(
	repo repository.Repository[domain.Balance],
	logger *slog.Logger,
) *BalanceService {
	return &BalanceService{newCrud(
		"balance", repo, logger,
		mapper.NewBalance, mapper.ApplyBalanceUpdate, mapper.BalanceToRead,
	)}
}

// ListByAccount pages the balance snapshots of one account.
func (s *BalanceService) ListByAccount(
	ctx context.Context,
	accountID uint,
	opts repository.ListOptions,
) (*paging.Page[dto.BalanceRead], error) {
	return s.listBy(ctx, opts, "account_id = ?", accountID)
}
