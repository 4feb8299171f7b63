package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/middleware"
	"github.com/mbeller/hauskasse/pkg/service"
)

// UserRoutes sets up the service user endpoints.
func UserRoutes(app *fiber.App, svc *service.ServiceUserService, cfg config.Jwt) {
	group := app.Group("/api/users", middleware.JwtProtected(cfg))
	registerCrud[dto.ServiceUserCreate, dto.ServiceUserUpdate, dto.ServiceUserRead](group, "user", svc)
}

// AuthRoutes sets up the login endpoint. It is the only unprotected
// route besides the root ping.
func AuthRoutes(app *fiber.App, svc *service.AuthService) {
	app.Post("/auth/login", Login(svc))
}

// Login exchanges username and password for a signed token.
func Login(svc *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.LoginRequest](c)
		if err != nil {
			return nil
		}
		resp, err := svc.Login(c.Context(), input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), "invalid credentials")
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "login successful", resp)
	}
}
