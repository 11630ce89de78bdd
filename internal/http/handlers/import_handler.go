package handlers

import (
	"depotlog/internal/csvio"
	applog "depotlog/internal/log"
	"depotlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ImportHandler struct {
	Importer *services.ImportService
}

// Import reads the raw upload body and bulk-inserts into the named list.
// The response reports how many lines were saved vs skipped as duplicates.
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	kind := c.Params("kind")
	text := string(c.Body())

	var saved, skipped int
	var err error
	switch kind {
	case "products":
		saved, skipped, err = h.Importer.ImportProducts(text)
	case "users", "locations", "purposes":
		saved, skipped, err = h.Importer.ImportNames(kind, text)
	default:
		return c.Status(400).JSON(fiber.Map{"error": "unknown import kind"})
	}
	if err != nil {
		return fail(c, "import."+kind+".fail", err)
	}

	applog.Audit(c, "import."+kind, map[string]any{"saved": saved, "skipped": skipped})
	return ok(c, fiber.Map{"savedCount": saved, "skippedCount": skipped})
}

// Template serves the starter CSV for an import kind.
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	filename, content, found := csvio.Template(c.Params("kind"))
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "unknown template"})
	}
	c.Set(fiber.HeaderContentType, "text/csv;charset=utf-8;")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(content)
}
