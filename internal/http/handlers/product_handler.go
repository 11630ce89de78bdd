package handlers

import (
	"depotlog/internal/domain"
	applog "depotlog/internal/log"
	"depotlog/internal/services"
	"depotlog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Registry *services.RegistryService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	return ok(c, h.Registry.Store.Products.Items())
}

func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var body struct {
		Name       string `json:"name"`
		QRCode     string `json:"qrcode"`
		CategoryID string `json:"categoryId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	name, okName := validate.Name(body.Name)
	if !okName {
		return c.Status(400).JSON(fiber.Map{"error": "invalid name"})
	}

	p, err := h.Registry.AddProduct(name, body.QRCode, body.CategoryID)
	if err != nil {
		return fail(c, "products.add.fail", err)
	}
	applog.Audit(c, "products.add", map[string]any{"product_id": p.ID, "name": p.Name})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": p})
}

// Update edits name/qrcode/categoryId in place.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	var body struct {
		Name       string `json:"name"`
		QRCode     string `json:"qrcode"`
		CategoryID string `json:"categoryId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	name, okName := validate.Name(body.Name)
	if !okName {
		return c.Status(400).JSON(fiber.Map{"error": "invalid name"})
	}

	p, err := h.Registry.Store.Products.Update(domain.Product{
		ID: id, Name: name, QRCode: body.QRCode, CategoryID: body.CategoryID,
	})
	if err != nil {
		return fail(c, "products.update.fail", err)
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": id})
	return ok(c, p)
}

func (h *ProductHandler) Remove(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Registry.Store.Products.Remove(id); err != nil {
		return fail(c, "products.remove.fail", err)
	}
	applog.Audit(c, "products.remove", map[string]any{"product_id": id})
	return ok(c, id)
}
