package handlers

import (
	"depotlog/internal/domain"
	applog "depotlog/internal/log"
	"depotlog/internal/services"
	"depotlog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Registry *services.RegistryService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return ok(c, h.Registry.Store.Categories.Items())
}

func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	name, okName := validate.Name(body.Name)
	if !okName {
		return c.Status(400).JSON(fiber.Map{"error": "invalid name"})
	}

	cat, err := h.Registry.AddCategory(name)
	if err != nil {
		return fail(c, "categories.add.fail", err)
	}
	applog.Audit(c, "categories.add", map[string]any{"category_id": cat.ID, "name": cat.Name})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": cat})
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	name, okName := validate.Name(body.Name)
	if !okName {
		return c.Status(400).JSON(fiber.Map{"error": "invalid name"})
	}

	cat, err := h.Registry.Store.Categories.Update(domain.Category{ID: id, Name: name})
	if err != nil {
		return fail(c, "categories.update.fail", err)
	}
	applog.Audit(c, "categories.update", map[string]any{"category_id": id})
	return ok(c, cat)
}

// Remove deletes the category without touching products that reference it;
// their categoryId keeps pointing at the removed id.
func (h *CategoryHandler) Remove(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Registry.Store.Categories.Remove(id); err != nil {
		return fail(c, "categories.remove.fail", err)
	}
	applog.Audit(c, "categories.remove", map[string]any{"category_id": id})
	return ok(c, id)
}
