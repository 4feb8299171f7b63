package webapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mbeller/hauskasse/internal/fixtures/mocks"
	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/domain"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/service"
)

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockRepository[domain.ServiceUser], *mocks.MockRepository[domain.Country]) {
	t.Helper()
	logger := newTestLogger()
	cfg := &config.App{
		Jwt:       config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		RateLimit: config.RateLimit{MaxRequests: 1000, Window: time.Second},
	}

	userRepo := mocks.NewMockRepository[domain.ServiceUser](t)
	countryRepo := mocks.NewMockRepository[domain.Country](t)
	users := service.NewServiceUserService(userRepo, logger)

	deps := Deps{
		Accounts:     service.NewAccountService(mocks.NewMockRepository[domain.Account](t), logger),
		Balances:     service.NewBalanceService(mocks.NewMockRepository[domain.Balance](t), logger),
		Banks:        service.NewBankService(mocks.NewMockRepository[domain.Bank](t), logger),
		Countries:    service.NewCountryService(countryRepo, logger),
		Currencies:   service.NewCurrencyService(mocks.NewMockRepository[domain.Currency](t), logger),
		Transactions: service.NewTransactionService(mocks.NewMockRepository[domain.Transaction](t), logger),
		Salaries:     service.NewSalaryService(mocks.NewMockRepository[domain.Salary](t), logger),
		Users:        users,
		HouseThings:  service.NewHouseThingService(mocks.NewMockRepository[domain.HouseThing](t), logger),
		Rooms:        service.NewRoomService(mocks.NewMockRepository[domain.Room](t), logger),
		Suppliers:    service.NewSupplierService(mocks.NewMockRepository[domain.Supplier](t), logger),
		Auth:         service.NewAuthService(users, cfg.Jwt, logger),
	}
	return NewApp(cfg, deps), userRepo, countryRepo
}

func TestApp_ProtectedRouteRejectsAnonymous(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestApp_LoginThenAccessProtectedRoute(t *testing.T) {
	app, userRepo, countryRepo := newTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("FindOneBy", mock.Anything, "username = ?", "anna").Return(&domain.ServiceUser{
		Audit:        domain.Audit{ID: 1, IsActive: true},
		Username:     "anna",
		PasswordHash: string(hash),
	}, nil)
	countryRepo.On("List", mock.Anything, mock.Anything).
		Return([]domain.Country{}, int64(0), nil)

	payload, _ := json.Marshal(dto.LoginRequest{Username: "anna", Password: "secret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.LoginResponse `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Data.Token)

	req = httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+body.Data.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestApp_LoginWrongPassword(t *testing.T) {
	app, userRepo, _ := newTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	userRepo.On("FindOneBy", mock.Anything, "username = ?", "anna").Return(&domain.ServiceUser{
		Audit:        domain.Audit{ID: 1, IsActive: true},
		Username:     "anna",
		PasswordHash: string(hash),
	}, nil)

	payload, _ := json.Marshal(dto.LoginRequest{Username: "anna", Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
