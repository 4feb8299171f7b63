package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mbeller/hauskasse/internal/fixtures/mocks"
	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
)

func TestServiceUserService_Create_HashesPassword(t *testing.T) {
	repo := mocks.NewMockRepository[domain.ServiceUser](t)
	svc := NewServiceUserService(repo, newTestLogger())

	var stored domain.ServiceUser
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ServiceUser")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.ServiceUser)
			u.ID = 1
			stored = *u
		}).Return(nil)
	repo.On("Get", mock.Anything, uint(1)).Return(&domain.ServiceUser{
		Audit:    domain.Audit{ID: 1, IsActive: true},
		Username: "anna",
	}, nil)

	got, err := svc.Create(context.Background(), &dto.ServiceUserCreate{
		Username: "anna",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "anna", got.Username)

	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("correct horse battery")))
}

func TestServiceUserService_Update_WithoutPasswordKeepsHash(t *testing.T) {
	repo := mocks.NewMockRepository[domain.ServiceUser](t)
	svc := NewServiceUserService(repo, newTestLogger())

	stored := &domain.ServiceUser{
		Audit:        domain.Audit{ID: 2, IsActive: true},
		Username:     "ben",
		PasswordHash: "$2a$10$existinghash",
	}
	repo.On("Get", mock.Anything, uint(2)).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.ServiceUser) bool {
		return u.Email == "ben@example.org" && u.PasswordHash == "$2a$10$existinghash"
	})).Return(nil)

	email := "ben@example.org"
	_, err := svc.Update(context.Background(), 2, &dto.ServiceUserUpdate{Email: &email})
	require.NoError(t, err)
}

func newAuthFixture(t *testing.T, user *domain.ServiceUser) (*AuthService, *mocks.MockRepository[domain.ServiceUser]) {
	t.Helper()
	repo := mocks.NewMockRepository[domain.ServiceUser](t)
	users := NewServiceUserService(repo, newTestLogger())
	if user != nil {
		repo.On("FindOneBy", mock.Anything, "username = ?", user.Username).Return(user, nil)
	}
	cfg := config.Jwt{Secret: "test-secret", Expiry: time.Hour}
	return NewAuthService(users, cfg, newTestLogger()), repo
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	svc, _ := newAuthFixture(t, &domain.ServiceUser{
		Audit:        domain.Audit{ID: 1, IsActive: true},
		Username:     "anna",
		PasswordHash: string(hash),
	})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "anna",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	svc, _ := newAuthFixture(t, &domain.ServiceUser{
		Audit:        domain.Audit{ID: 1, IsActive: true},
		Username:     "anna",
		PasswordHash: string(hash),
	})

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "anna",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	svc, _ := newAuthFixture(t, &domain.ServiceUser{
		Audit:        domain.Audit{ID: 1, IsActive: false},
		Username:     "anna",
		PasswordHash: string(hash),
	})

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "anna",
		Password: "secret-pass",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	repo := mocks.NewMockRepository[domain.ServiceUser](t)
	users := NewServiceUserService(repo, newTestLogger())
	repo.On("FindOneBy", mock.Anything, "username = ?", "ghost").
		Return(nil, domain.ErrNotFound)
	svc := NewAuthService(users, config.Jwt{Secret: "s", Expiry: time.Hour}, newTestLogger())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
