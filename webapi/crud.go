package webapi

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/mbeller/hauskasse/pkg/paging"
	"github.com/mbeller/hauskasse/pkg/repository"
)

// CrudService is the slice of a service the generic handlers need. Every
// aggregate service satisfies it; C/U are the create and update request
// DTOs and R the read DTO.
type CrudService[C, U, R any] interface {
	Create(ctx context.Context, create *C) (*R, error)
	Update(ctx context.Context, id uint, update *U) (*R, error)
	SoftDelete(ctx context.Context, id uint) (bool, error)
	HardDelete(ctx context.Context, id uint) (bool, error)
	Get(ctx context.Context, id uint) (*R, error)
	List(ctx context.Context, opts repository.ListOptions) (*paging.Page[R], error)
}

// registerCrud wires the six standard routes of one aggregate onto a
// route group: paged list, get by id, create, full update, soft delete
// and hard delete.
func registerCrud[C, U, R any](group fiber.Router, name string, svc CrudService[C, U, R]) {
	group.Get("/", listHandler(name, svc))
	group.Get("/:id", getHandler(name, svc))
	group.Post("/", createHandler(name, svc))
	group.Put("/:id", updateHandler(name, svc))
	group.Delete("/:id", softDeleteHandler(name, svc))
	group.Delete("/:id/hard", hardDeleteHandler(name, svc))
}

func listHandler[C, U, R any](name string, svc CrudService[C, U, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := svc.List(c.Context(), parseListOptions(c))
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, name+" list fetched", page)
	}
}

func getHandler[C, U, R any](name string, svc CrudService[C, U, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		read, err := svc.Get(c.Context(), id)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, name+" fetched", read)
	}
}

func createHandler[C, U, R any](name string, svc CrudService[C, U, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[C](c)
		if err != nil {
			return nil
		}
		read, err := svc.Create(c.Context(), input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, name+" created", read)
	}
}

func updateHandler[C, U, R any](name string, svc CrudService[C, U, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		input, err := BindAndValidate[U](c)
		if err != nil {
			return nil
		}
		read, err := svc.Update(c.Context(), id, input)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		return SuccessResponseJSON(c, fiber.StatusOK, name+" updated", read)
	}
}

func softDeleteHandler[C, U, R any](name string, svc CrudService[C, U, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		found, err := svc.SoftDelete(c.Context(), id)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		if !found {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Not Found", name+" not found")
		}
		return SuccessResponseJSON(c, fiber.StatusOK, name+" deactivated", nil)
	}
}

func hardDeleteHandler[C, U, R any](name string, svc CrudService[C, U, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return nil
		}
		found, err := svc.HardDelete(c.Context(), id)
		if err != nil {
			return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorTitle(err), err.Error())
		}
		if !found {
			return ErrorResponseJSON(c, fiber.StatusNotFound, "Not Found", name+" not found")
		}
		return SuccessResponseJSON(c, fiber.StatusOK, name+" deleted", nil)
	}
}
