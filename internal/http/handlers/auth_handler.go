package handlers

import (
	"time"

	"depotlog/internal/log"
	"depotlog/internal/services"
	"depotlog/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// csrfToken reads the token the csrf middleware issued for this request.
// On a first visit there is no csrf_ cookie yet, so the request context is
// the only reliable source.
func csrfToken(c *fiber.Ctx) string {
	if tok, ok := c.Locals("csrf").(string); ok && tok != "" {
		return tok
	}
	tok, _ := c.Locals("CSRFToken").(string)
	return tok
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": "", "CSRFToken": csrfToken(c)})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": csrfToken(c)})
	}
	if !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": csrfToken(c)})
	}

	_, err := h.Auth.SignIn(sid, email, pass)
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": csrfToken(c)})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	name := c.FormValue("name")
	if _, ok := validate.Email(email); !ok {
		return c.Status(400).Render("login", fiber.Map{"Err": "Invalid email address", "CSRFToken": csrfToken(c)})
	}
	if !validate.Password(pass) {
		return c.Status(400).Render("login", fiber.Map{"Err": "Password needs 8+ characters with upper, lower and digit", "CSRFToken": csrfToken(c)})
	}

	a, err := h.Auth.SignUp(email, pass, name)
	if err != nil {
		log.Security(c, "auth.signup.fail", map[string]any{"email": email})
		return c.Status(400).Render("login", fiber.Map{"Err": "Could not create account", "CSRFToken": csrfToken(c)})
	}
	if _, err := h.Auth.SignIn(sid, email, pass); err != nil {
		return c.Redirect("/login")
	}

	log.Audit(c, "auth.signup.success", map[string]any{"email": email, "account_id": a.ID})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.SignOut(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/login")
}
