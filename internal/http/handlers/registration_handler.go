package handlers

import (
	"time"

	"depotlog/internal/csvio"
	applog "depotlog/internal/log"
	"depotlog/internal/query"
	"depotlog/internal/services"
	"depotlog/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type RegistrationHandler struct {
	Registry *services.RegistryService
}

func filterFromQuery(c *fiber.Ctx) query.Filter {
	f := query.Filter{
		Search:    c.Query("q"),
		User:      c.Query("user"),
		Product:   c.Query("product"),
		Location:  c.Query("location"),
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}
	if d, okDate := validate.Date(c.Query("from")); okDate {
		f.DateFrom = d
	}
	if d, okDate := validate.Date(c.Query("to")); okDate {
		f.DateTo = d
	}
	return f
}

// List returns the filtered, sorted history view.
func (h *RegistrationHandler) List(c *fiber.Ctx) error {
	f := filterFromQuery(c)
	entries := f.Apply(h.Registry.Store.Registrations.Items())
	return ok(c, entries)
}

func (h *RegistrationHandler) Create(c *fiber.Ctx) error {
	var body struct {
		User     string `json:"user"`
		Product  string `json:"product"`
		Location string `json:"location"`
		Purpose  string `json:"purpose"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}

	e, err := h.Registry.Register(body.User, body.Product, body.Location, body.Purpose)
	if err != nil {
		return fail(c, "registrations.create.fail", err)
	}
	applog.Audit(c, "registrations.create", map[string]any{
		"id": e.ID, "user": e.User, "product": e.Product,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": e})
}

// Export streams the current filtered view as a CSV download.
func (h *RegistrationHandler) Export(c *fiber.Ctx) error {
	f := filterFromQuery(c)
	entries := f.Apply(h.Registry.Store.Registrations.Items())
	content := csvio.ExportRegistrations(entries)
	filename := csvio.ExportFilename(f.Active(), time.Now())

	applog.Info(c, "registrations.export", map[string]any{"rows": len(entries), "filtered": f.Active()})
	c.Set(fiber.HeaderContentType, "text/csv;charset=utf-8;")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(content)
}

// Stats serves the dashboard summary, recomputed fresh on every call.
func (h *RegistrationHandler) Stats(c *fiber.Ctx) error {
	return ok(c, query.Summarize(h.Registry.Store.Registrations.Items()))
}
