package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

// AuthService issues JWTs for service users.
type AuthService struct {
	users  *ServiceUserService
	cfg    config.Jwt
	logger *slog.Logger
}

func NewAuthService(users *ServiceUserService, cfg config.Jwt, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		cfg:    cfg,
		logger: logger.With("service", "auth"),
	}
}

// Login verifies the credentials against the stored bcrypt hash and
// returns a signed token. Unknown usernames, deactivated users and wrong
// passwords all surface as domain.ErrUnauthorized without distinction.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.cfg.Expiry)
	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("token signing failed", "error", err)
		return nil, err
	}
	s.logger.Info("user logged in", "username", user.Username)
	return &dto.LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}
