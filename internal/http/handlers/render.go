package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject account if present
	if a := c.Locals("account"); a != nil {
		data["Account"] = a
	}
	if _, set := data["CSRFToken"]; !set {
		if tok := csrfToken(c); tok != "" {
			data["CSRFToken"] = tok
		}
	}
	return c.Render(tmpl, data)
}
