package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/middleware"
	"github.com/mbeller/hauskasse/pkg/service"
)

// BankRoutes sets up the bank endpoints.
func BankRoutes(app *fiber.App, svc *service.BankService, cfg config.Jwt) {
	group := app.Group("/api/banks", middleware.JwtProtected(cfg))
	group.Get("/country/:countryId", ListBanksByCountry(svc))
	registerCrud[dto.BankCreate, dto.BankUpdate, dto.BankRead](group, "bank", svc)
}

// ListBanksByCountry pages the banks registered in one country.
func ListBanksByCountry(svc *service.BankService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		countryID, err := parseID(c, "countryId")
		if err != nil {
			return nil
		}
		page, err := svc.ListByCountry(c.Context(), countryID, parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "bank list fetched", page)
	}
}

// CountryRoutes sets up the country endpoints.
func CountryRoutes(app *fiber.App, svc *service.CountryService, cfg config.Jwt) {
	group := app.Group("/api/countries", middleware.JwtProtected(cfg))
	registerCrud[dto.CountryCreate, dto.CountryUpdate, dto.CountryRead](group, "country", svc)
}

// CurrencyRoutes sets up the currency endpoints.
func CurrencyRoutes(app *fiber.App, svc *service.CurrencyService, cfg config.Jwt) {
	group := app.Group("/api/currencies", middleware.JwtProtected(cfg))
	registerCrud[dto.CurrencyCreate, dto.CurrencyUpdate, dto.CurrencyRead](group, "currency", svc)
}

// SupplierRoutes sets up the supplier endpoints.
func SupplierRoutes(app *fiber.App, svc *service.SupplierService, cfg config.Jwt) {
	group := app.Group("/api/suppliers", middleware.JwtProtected(cfg))
	registerCrud[dto.SupplierCreate, dto.SupplierUpdate, dto.SupplierRead](group, "supplier", svc)
}
