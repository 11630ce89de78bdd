package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"depotlog/internal/config"
	"depotlog/internal/http/handlers"
	applog "depotlog/internal/log"
	"depotlog/internal/repos"
	"depotlog/internal/services"
	"depotlog/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN, cfg.SeedDemo)
	if err != nil {
		log.Fatal(err)
	}

	// Entity store: one owner for all six collections, loaded up front.
	// A missing table degrades that collection, it does not block startup.
	st := store.New(db)
	if err := st.LoadAll(); err != nil {
		st.Close()
		log.Fatal(err)
	}

	// Auth wiring
	accountRepo := repos.NewAccountRepo(db)
	authSvc := &services.AuthService{Accounts: accountRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New(cfg.TemplatesDir, ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Something went wrong. Please try again.",
				})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard (covers CSV uploads)
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach account to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if a, err := authSvc.CurrentUser(sid); err == nil && a != nil {
				c.Locals("account", a)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			// The event stream is one long-lived request, not request spam.
			return c.Path() == "/api/v1/events"
		},
	}))

	// CSRF protects the HTML forms; the JSON API rides on the SameSite
	// session cookie.
	csrfMW := csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	})
	// ---------- Pages ----------
	// csrfMW runs per route, so the token is read from Locals("csrf") in
	// the handler, after the middleware has issued it.
	app.Get("/", csrfMW, handlers.RequireUser(authSvc), func(c *fiber.Ctx) error {
		tok, _ := c.Locals("csrf").(string)
		return c.Render("index", fiber.Map{"Account": c.Locals("account"), "CSRFToken": tok})
	})
	app.Get("/login", csrfMW, authH.LoginForm)
	app.Post("/login", csrfMW, limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			tok, _ := c.Locals("csrf").(string)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later.", "CSRFToken": tok})
		},
	}), authH.Login)
	app.Post("/signup", csrfMW, authH.Signup)
	app.Post("/logout", csrfMW, authH.Logout)

	// ---------- JSON API ----------
	deps := handlers.NewDeps(st, authSvc)
	api := app.Group("/api/v1", handlers.RequireUser(authSvc))

	api.Get("/users", deps.UserHandler.List)
	api.Post("/users", deps.UserHandler.Add)
	api.Delete("/users/:name", deps.UserHandler.Remove)

	api.Get("/locations", deps.LocationHandler.List)
	api.Post("/locations", deps.LocationHandler.Add)
	api.Delete("/locations/:name", deps.LocationHandler.Remove)

	api.Get("/purposes", deps.PurposeHandler.List)
	api.Post("/purposes", deps.PurposeHandler.Add)
	api.Delete("/purposes/:name", deps.PurposeHandler.Remove)

	api.Get("/categories", deps.CategoryHandler.List)
	api.Post("/categories", deps.CategoryHandler.Add)
	api.Put("/categories/:id", deps.CategoryHandler.Update)
	api.Delete("/categories/:id", deps.CategoryHandler.Remove)

	api.Get("/products", deps.ProductHandler.List)
	api.Post("/products", deps.ProductHandler.Add)
	api.Put("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Remove)

	api.Get("/registrations", deps.RegistrationHandler.List)
	api.Post("/registrations", deps.RegistrationHandler.Create)
	api.Get("/registrations/export", deps.RegistrationHandler.Export)
	api.Get("/stats", deps.RegistrationHandler.Stats)

	api.Get("/qr/:code", deps.QRHandler.Resolve)
	api.Get("/templates/:kind", deps.ImportHandler.Template)
	api.Post("/import/:kind", handlers.RequireAdmin(authSvc), deps.ImportHandler.Import)

	api.Get("/events", deps.EventsHandler.Stream)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	if err := app.Listen(":" + cfg.Port); err != nil {
		st.Close()
		log.Fatal(err)
	}
}
