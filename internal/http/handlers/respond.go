package handlers

import (
	"errors"

	applog "depotlog/internal/log"
	"depotlog/internal/repos"
	"depotlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

// fail converts any error to one transient JSON message. Unknown errors are
// downgraded to a generic message here so nothing internal leaks past the
// handler boundary.
func fail(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)

	status := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	switch {
	case errors.Is(err, services.ErrMissingField), errors.Is(err, services.ErrNoItems):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrDuplicate):
		status, msg = fiber.StatusConflict, err.Error()
	case errors.Is(err, repos.ErrAppendOnly), errors.Is(err, repos.ErrImmutable):
		status, msg = fiber.StatusMethodNotAllowed, err.Error()
	case repos.IsTableMissing(err):
		status, msg = fiber.StatusServiceUnavailable, "table does not exist"
	}

	body := fiber.Map{"error": msg}
	if code := repos.Code(err); code != "" {
		body["code"] = code
	}
	return c.Status(status).JSON(body)
}
