package service

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/mapper"
	"github.com/mbeller/hauskasse/pkg/repository"
)

// ServiceUserService manages the accounts people sign in with. Plain
// passwords are bcrypt-hashed here and never reach the mappers or the
// repository.
type ServiceUserService struct {
	*Crud[domain.ServiceUser, dto.ServiceUserCreate, dto.ServiceUserUpdate, dto.ServiceUserRead]
}

func NewServiceUserService(
	repo repository.Repository[domain.ServiceUser],
	logger *slog.Logger,
) *ServiceUserService {
	return &ServiceUserService{newCrud[domain.ServiceUser, dto.ServiceUserCreate, dto.ServiceUserUpdate, dto.ServiceUserRead](
		"serviceuser", repo, logger,
		nil, nil, mapper.ServiceUserToRead,
	)}
}

// Create hashes the request password and persists a new service user.
func (s *ServiceUserService) Create(ctx context.Context, create *dto.ServiceUserCreate) (*dto.ServiceUserRead, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(create.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	entity := mapper.NewServiceUser(create, string(hash))
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("create failed", "error", err)
		return nil, err
	}
	return s.Get(ctx, entity.ID)
}

// Update merges the permitted fields into the stored user, hashing a new
// password when one is supplied.
func (s *ServiceUserService) Update(ctx context.Context, id uint, update *dto.ServiceUserUpdate) (*dto.ServiceUserRead, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var passwordHash *string
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		passwordHash = &h
	}
	mapper.ApplyServiceUserUpdate(entity, update, passwordHash)
	if err := s.repo.Update(ctx, entity); err != nil {
		s.logger.Error("update failed", "id", id, "error", err)
		return nil, err
	}
	return s.Get(ctx, id)
}

// GetByUsername looks a user up by username for authentication. It
// returns the entity, not a read DTO, because the caller needs the
// password hash.
func (s *ServiceUserService) GetByUsername(ctx context.Context, username string) (*domain.ServiceUser, error) {
	return s.repo.FindOneBy(ctx, "username = ?", username)
}
