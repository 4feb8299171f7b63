package webapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/middleware"
	"github.com/mbeller/hauskasse/pkg/service"
)

// TransactionRoutes sets up the transaction endpoints.
func TransactionRoutes(app *fiber.App, svc *service.TransactionService, cfg config.Jwt) {
	group := app.Group("/api/transactions", middleware.JwtProtected(cfg))
	group.Get("/account/:accountId", ListTransactionsByAccount(svc))
	group.Get("/year/:year", ListTransactionsByYear(svc))
	registerCrud[dto.TransactionCreate, dto.TransactionUpdate, dto.TransactionRead](group, "transaction", svc)
}

// ListTransactionsByAccount pages the transactions of one account.
func ListTransactionsByAccount(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := parseID(c, "accountId")
		if err != nil {
			return nil
		}
		page, err := svc.ListByAccount(c.Context(), accountID, parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "transaction list fetched", page)
	}
}

// ListTransactionsByYear pages the transactions of one calendar year.
func ListTransactionsByYear(svc *service.TransactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := strconv.Atoi(c.Params("year"))
		if err != nil || year < 1 {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid year", "path parameter year must be a positive integer")
		}
		page, err := svc.ListByYear(c.Context(), year, parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "transaction list fetched", page)
	}
}

// SalaryRoutes sets up the salary endpoints.
func SalaryRoutes(app *fiber.App, svc *service.SalaryService, cfg config.Jwt) {
	group := app.Group("/api/salaries", middleware.JwtProtected(cfg))
	group.Get("/user/:userId", ListSalariesByUser(svc))
	group.Get("/year/:year", ListSalariesByYear(svc))
	registerCrud[dto.SalaryCreate, dto.SalaryUpdate, dto.SalaryRead](group, "salary", svc)
}

// ListSalariesByUser pages the salary payments of one service user.
func ListSalariesByUser(svc *service.SalaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseID(c, "userId")
		if err != nil {
			return nil
		}
		page, err := svc.ListByUser(c.Context(), userID, parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "salary list fetched", page)
	}
}

// ListSalariesByYear pages the salary payments of one calendar year.
func ListSalariesByYear(svc *service.SalaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := strconv.Atoi(c.Params("year"))
		if err != nil || year < 1 {
			return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid year", "path parameter year must be a positive integer")
		}
		page, err := svc.ListByYear(c.Context(), year, parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "salary list fetched", page)
	}
}
