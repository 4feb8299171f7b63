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

// SalaryService manages salary payments.
type SalaryService struct {
	*Crud[domain.Salary, dto.SalaryCreate, dto.SalaryUpdate, dto.SalaryRead]
}

func NewSalaryService(
	repo repository.Repository[domain.Salary],
	logger *slog.Logger,
) *SalaryService {
	return &SalaryService{newCrud(
		"salary", repo, logger,
		mapper.NewSalary, mapper.ApplySalaryUpdate, mapper.SalaryToRead,
	)}
}

// ListByUser pages the salary payments of one service user.
func (s *SalaryService) ListByUser(
	ctx context.Context,
	userID uint,
	opts repository.ListOptions,
) (*paging.Page[dto.SalaryRead], error) {
	return s.listBy(ctx, opts, "user_id = ?", userID)
}

// ListByYear pages the salary payments received within one calendar
// year, bounds evaluated in UTC as a half-open range.
func (s *SalaryService) ListByYear(
	ctx context.Context,
	year int,
	opts repository.ListOptions,
) (*paging.Page[dto.SalaryRead], error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	return s.listBy(ctx, opts, "date >= ? AND date < ?", from, to)
}
