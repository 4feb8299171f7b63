package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/mapper"
	"github.com/mbeller/hauskasse/pkg/paging"
	"github.com/mbeller/hauskasse/pkg/repository"
)

// TransactionService manages booked account transactions.
type TransactionService struct {
	*Crud[domain.Transaction, dto.TransactionCreate, dto.TransactionUpdate, dto.TransactionRead]
}

func NewTransactionService(
	repo repository.Repository[domain.Transaction],
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{newCrud(
		"transaction", repo, logger,
		mapper.NewTransaction, mapper.ApplyTransactionUpdate, mapper.TransactionToRead,
	)}
}

// ListByAccount pages the transactions booked on one account.
func (s *TransactionService) ListByAccount(
	ctx context.Context,
	accountID uint,
	opts repository.ListOptions,
) (*paging.Page[dto.TransactionRead], error) {
	return s.listBy(ctx, opts, "account_id = ?", accountID)
}

// ListByYear pages the transactions booked within one calendar year. The
// year bounds are evaluated in UTC as a half-open range.
func (s *TransactionService) ListByYear(
	ctx context.Context,
	year int,
	opts repository.ListOptions,
) (*paging.Page[dto.TransactionRead], error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	return s.listBy(ctx, opts, "date >= ? AND date < ?", from, to)
}
