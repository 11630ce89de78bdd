package handlers

import (
	applog "depotlog/internal/log"
	"depotlog/internal/services"
	"depotlog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// QRHandler resolves a manually entered code to a product. There is no
// decoder behind this; scanning means typing or pasting the code.
type QRHandler struct {
	Registry *services.RegistryService
}

func (h *QRHandler) Resolve(c *fiber.Ctx) error {
	code, okCode := validate.QR(c.Params("code"))
	if !okCode {
		return c.Status(400).JSON(fiber.Map{"error": "invalid code"})
	}
	p, found := h.Registry.FindByQR(code)
	if !found {
		applog.Info(c, "qr.miss", map[string]any{"code": code})
		return c.Status(404).JSON(fiber.Map{"error": "no product for this code"})
	}
	return ok(c, p)
}
