package webapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbeller/hauskasse/pkg/config"
	"github.com/mbeller/hauskasse/pkg/dto"
	"github.com/mbeller/hauskasse/pkg/middleware"
	"github.com/mbeller/hauskasse/pkg/service"
)

// HouseThingRoutes sets up the household item endpoints, including the
// replacement history and the renew operation.
func HouseThingRoutes(app *fiber.App, svc *service.HouseThingService, cfg config.Jwt) {
	group := app.Group("/api/housethings", middleware.JwtProtected(cfg))
	group.Get("/room/:roomId", ListHouseThingsByRoom(svc))
	group.Get("/history/:historyId", ListHouseThingHistory(svc))
	group.Post("/:id/renew", RenewHouseThing(svc))
	registerCrud[dto.HouseThingCreate, dto.HouseThingUpdate, dto.HouseThingRead](group, "housething", svc)
}

// ListHouseThingsByRoom pages the items assigned to one room.
func ListHouseThingsByRoom(svc *service.HouseThingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomID, err := parseID(c, "roomId")
		if err != nil {
			return nil
		}
		page, err := svc.ListByRoom(c.Context(), roomID, parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "housething list fetched", page)
	}
}

// ListHouseThingHistory pages every generation of one item's replacement
// chain. Replaced generations are soft-deleted, so inactive rows are
// included unless the caller explicitly filters them out.
func ListHouseThingHistory(svc *service.HouseThingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		historyID, err := parseID(c, "historyId")
		if err != nil {
			return nil
		}
		opts := parseListOptions(c)
		if c.Query("include_inactive") == "" {
			opts.IncludeInactive = true
		}
		page, err := svc.History(c.Context(), historyID, opts)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "housething history fetched", page)
	}
}

// RenewHouseThing records the replacement of one item. The body carries
// the attributes of the replacement; the new row joins the source row's
// history group.
func RenewHouseThing(svc *service.HouseThingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		input, err := BindAndValidate[dto.HouseThingCreate](c)
		if err != nil {
			return nil
		}
		read, err := svc.Renew(c.Context(), id, input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "housething renewed", read)
	}
}

// RoomRoutes sets up the room endpoints.
func RoomRoutes(app *fiber.App, svc *service.RoomService, cfg config.Jwt) {
	group := app.Group("/api/rooms", middleware.JwtProtected(cfg))
	registerCrud[dto.RoomCreate, dto.RoomUpdate, dto.RoomRead](group, "room", svc)
}
