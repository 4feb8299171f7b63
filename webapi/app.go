package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/service"
)

// Deps bundles the services the API routes are built on.
type Deps struct {
	Accounts     *service.AccountService
	Balances     *service.BalanceService
	Banks        *service.BankService
	Countries    *service.CountryService
	Currencies   *service.CurrencyService
	Transactions *service.TransactionService
	Salaries     *service.SalaryService
	Users        *service.ServiceUserService
	HouseThings  *service.HouseThingService
	Rooms        *service.RoomService
	Suppliers    *service.SupplierService
	Auth         *service.AuthService
}

// NewApp builds the fiber application with rate limiting, panic recovery
// and all routes registered.
func NewApp(cfg *config.App, deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "hauskasse",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("hauskasse is running")
	})

	AuthRoutes(app, deps.Auth)
	AccountRoutes(app, deps.Accounts, cfg.Jwt)
	BalanceRoutes(app, deps.Balances, cfg.Jwt)
	BankRoutes(app, deps.Banks, cfg.Jwt)
	CountryRoutes(app, deps.Countries, cfg.Jwt)
	CurrencyRoutes(app, deps.Currencies, cfg.Jwt)
	TransactionRoutes(app, deps.Transactions, cfg.Jwt)
	SalaryRoutes(app, deps.Salaries, cfg.Jwt)
	UserRoutes(app, deps.Users, cfg.Jwt)
	HouseThingRoutes(app, deps.HouseThings, cfg.Jwt)
	RoomRoutes(app, deps.Rooms, cfg.Jwt)
	SupplierRoutes(app, deps.Suppliers, cfg.Jwt)

	return app
}
