package handlers

import (
	applog "depotlog/internal/log"
	"depotlog/internal/services"
	"depotlog/internal/store"
	"depotlog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// NameHandler serves one of the three name lists (users, locations,
// purposes); the name itself is the key for both add and remove.
type NameHandler struct {
	Kind     string
	Registry *services.RegistryService
}

func (h *NameHandler) col() *store.Collection[string] {
	switch h.Kind {
	case "locations":
		return h.Registry.Store.Locations
	case "purposes":
		return h.Registry.Store.Purposes
	default:
		return h.Registry.Store.Users
	}
}

func (h *NameHandler) List(c *fiber.Ctx) error {
	return ok(c, h.col().Items())
}

func (h *NameHandler) Add(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	name, okName := validate.Name(body.Name)
	if !okName {
		applog.Security(c, h.Kind+".add.invalid", map[string]any{"name": body.Name})
		return c.Status(400).JSON(fiber.Map{"error": "invalid name"})
	}

	var created string
	var err error
	switch h.Kind {
	case "locations":
		created, err = h.Registry.AddLocation(name)
	case "purposes":
		created, err = h.Registry.AddPurpose(name)
	default:
		created, err = h.Registry.AddUser(name)
	}
	if err != nil {
		return fail(c, h.Kind+".add.fail", err)
	}
	applog.Audit(c, h.Kind+".add", map[string]any{"name": created})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (h *NameHandler) Remove(c *fiber.Ctx) error {
	name, okName := validate.Name(c.Params("name"))
	if !okName {
		return c.Status(400).JSON(fiber.Map{"error": "invalid name"})
	}
	if err := h.col().Remove(name); err != nil {
		return fail(c, h.Kind+".remove.fail", err)
	}
	applog.Audit(c, h.Kind+".remove", map[string]any{"name": name})
	return ok(c, name)
}
