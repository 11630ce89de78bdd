package handlers

import (
	applog "depotlog/internal/log"
	"depotlog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser gates all data routes: no session, no data.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return deny(c)
		}
		a, err := auth.CurrentUser(sid)
		if err != nil || a == nil {
			return deny(c)
		}
		c.Locals("account", a)
		return c.Next()
	}
}

// RequireAdmin additionally demands the ADMIN role (bulk imports).
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return deny(c)
		}
		a, err := auth.CurrentUser(sid)
		if err != nil || a == nil || a.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		}
		c.Locals("account", a)
		return c.Next()
	}
}

func deny(c *fiber.Ctx) error {
	if c.Accepts("html", "json") == "html" {
		return c.Redirect("/login")
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Sign in required"})
}
