// Package web is the presentation shell: a fiber app exposing the session
// containers behind role-gated route groups.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/petparadise/storefront/internal/backend"
	"github.com/petparadise/storefront/internal/config"
	"github.com/petparadise/storefront/internal/user"
)

type App struct {
	fiber    *fiber.App
	registry *Registry
	cfg      config.Config
	log      *logrus.Entry
}

func New(cfg config.Config, client *backend.Client) *App {
	a := &App{
		fiber:    fiber.New(),
		registry: NewRegistry(client, cfg.NotifyTTL, cfg.DefaultLocale),
		cfg:      cfg,
		log:      logrus.WithField("component", "web"),
	}
	a.setupCORS()
	a.registerRoutes()
	return a
}

func (a *App) Listen() error {
	a.log.WithField("addr", a.cfg.Addr).Info("listening")
	return a.fiber.Listen(a.cfg.Addr)
}

// Fiber exposes the underlying app for tests.
func (a *App) Fiber() *fiber.App { return a.fiber }

func (a *App) setupCORS() {
	a.fiber.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func (a *App) registerRoutes() {
	api := a.fiber.Group("/api")

	api.Post("/auth/sign-in", a.signIn)
	api.Post("/auth/sign-up", a.signUp)

	protected := api.Group("", jwtMiddleware(a.cfg.JWTSecret), a.loadSession)
	protected.Post("/auth/sign-out", a.signOut)
	protected.Get("/auth/me", a.me)
	protected.Put("/auth/profile", a.updateProfile)
	protected.Get("/notifications", a.notifications)
	protected.Post("/notifications/:id/dismiss", a.dismissNotification)

	shop := protected.Group("/shop", requireRole(user.RoleCustomer, user.RoleStaff, user.RoleAdmin))
	a.registerShopRoutes(shop)

	staff := protected.Group("/staff", requireRole(user.RoleStaff, user.RoleAdmin))
	a.registerStaffRoutes(staff)

	admin := protected.Group("/admin", requireRole(user.RoleAdmin))
	a.registerAdminRoutes(admin)
}
