package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/middleware"
	"github.com/mbeller/hauskasse/pkg/service"
)

// AccountRoutes sets up the account endpoints. Lookup by IBAN is
// registered before the generic routes so "/iban" is not captured by the
// ":id" parameter.
func AccountRoutes(app *fiber.App, svc *service.AccountService, cfg config.Jwt) {
	group := app.Group("/api/accounts", middleware.JwtProtected(cfg))
	group.Get("/iban/:iban", GetAccountByIban(svc))
	registerCrud[dto.AccountCreate, dto.AccountUpdate, dto.AccountRead](group, "account", svc)
}

// GetAccountByIban returns the account holding the given IBAN.
func GetAccountByIban(svc *service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		iban := c.Params("iban")
		read, err := svc.GetByIban(c.Context(), iban)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "account fetched", read)
	}
}

// BalanceRoutes sets up the balance endpoints.
func BalanceRoutes(app *fiber.App, svc *service.BalanceService, cfg config.Jwt) {
	group := app.Group("/api/balances", middleware.JwtProtected(cfg))
	group.Get("/account/:accountId", ListBalancesByAccount(svc))
	registerCrud[dto.BalanceCreate, dto.BalanceUpdate, dto.BalanceRead](group, "balance", svc)
}

// ListBalancesByAccount pages the balance snapshots of one account.
func ListBalancesByAccount(svc *service.BalanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseID(c, "accountId")
		if err != nil {
			return nil
		}
		page, err := svc.ListByAccount(c.Context(), accountID, parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "balance list fetched", page)
	}
}
